package roster

import "testing"

func TestDefault_LoadsEmbeddedRoster(t *testing.T) {
	t.Parallel()

	r := Default()
	names := r.Names()
	if len(names) != 2 {
		t.Fatalf("roster size = %d, want 2", len(names))
	}
	if names[0] != "Ana Souza" || names[1] != "Bruno Lima" {
		t.Fatalf("roster order = %v", names)
	}
}

func TestMatch_VariantsAndNoise(t *testing.T) {
	t.Parallel()
	r := Default()

	cases := []struct {
		text string
		want string
	}{
		{"Qual o salário da Ana Souza?", "E001"},
		{"ANA SOUZA", "E001"},
		{"ana souza!", "E001"},
		{"Ana  Souza", "E001"},
		{"quanto recebeu a. souza em maio", "E001"},
		{"descontos da ana", "E001"},
		{"salário do souza", "E001"},
		{"Quando foi pago o Bruno Lima?", "E002"},
		{"bruno l recebeu quanto", "E002"},
		{"b. lima", "E002"},
		{"o lima aí", "E002"},
	}
	for _, tc := range cases {
		e, ok := r.Match(tc.text)
		if !ok {
			t.Fatalf("Match(%q) found nothing, want %s", tc.text, tc.want)
		}
		if e.ID != tc.want {
			t.Fatalf("Match(%q) = %s, want %s", tc.text, e.ID, tc.want)
		}
	}
}

func TestMatch_DiacriticFolding(t *testing.T) {
	t.Parallel()

	r, err := FromJSON([]byte(`{"employees":[{"id":"E009","name":"José Antônio","variants":["josé antônio","josé"]}]}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	for _, text := range []string{"salário do José", "salario do jose", "JOSE ANTONIO"} {
		if _, ok := r.Match(text); !ok {
			t.Fatalf("Match(%q) found nothing", text)
		}
	}
}

func TestMatch_WholeWordOnly(t *testing.T) {
	t.Parallel()
	r := Default()

	// "anabela" contains "ana" but not as a whole word
	if _, ok := r.Match("a anabela pediu férias"); ok {
		t.Fatalf("matched inside a larger word")
	}
	if _, ok := r.Match("o funcionário"); ok {
		t.Fatalf("matched with no roster token present")
	}
	if _, ok := r.Match(""); ok {
		t.Fatalf("matched empty text")
	}
}

func TestMatch_DefinitionOrderWins(t *testing.T) {
	t.Parallel()

	r, err := FromJSON([]byte(`{"employees":[
		{"id":"A","name":"Alice Prado","variants":["prado"]},
		{"id":"B","name":"Bia Prado","variants":["prado"]}
	]}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	e, ok := r.Match("holerite do prado")
	if !ok || e.ID != "A" {
		t.Fatalf("Match = %v/%v, want entry A", e.ID, ok)
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := FromJSON([]byte(`not json`)); err == nil {
		t.Fatalf("expected error for invalid json")
	}
	if _, err := FromJSON([]byte(`{"employees":[]}`)); err == nil {
		t.Fatalf("expected error for empty roster")
	}
	if _, err := FromJSON([]byte(`{"employees":[{"id":"","name":"X"}]}`)); err == nil {
		t.Fatalf("expected error for entry without id")
	}
}

func TestByID(t *testing.T) {
	t.Parallel()
	r := Default()

	e, ok := r.ByID("E002")
	if !ok || e.Name != "Bruno Lima" {
		t.Fatalf("ByID(E002) = %+v/%v", e, ok)
	}
	if _, ok := r.ByID("E999"); ok {
		t.Fatalf("ByID(E999) ok = true")
	}
}
