package module

import (
	"testing"
)

type portSet struct {
	Name string
	ID   int
}

// registry tests share global state, so no t.Parallel here

func TestRegistry_RegisterAndPortsAs(t *testing.T) {
	Reset()

	want := portSet{Name: "payroll", ID: 1}
	Register("payroll", want)

	got, ok := PortsAs[portSet]("payroll")
	if !ok {
		t.Fatalf("expected ok for existing name")
	}
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestRegistry_Missing(t *testing.T) {
	Reset()

	got, ok := PortsAs[portSet]("missing")
	if ok {
		t.Fatal("expected ok=false for missing name")
	}
	if got != (portSet{}) {
		t.Fatalf("expected zero value, got %v", got)
	}
}

func TestRegistry_TypeMismatch(t *testing.T) {
	Reset()

	Register("payroll", portSet{Name: "payroll", ID: 2})
	if _, ok := PortsAs[int]("payroll"); ok {
		t.Fatal("expected ok=false for type mismatch")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	Reset()

	Register("chat", portSet{Name: "a", ID: 1})
	Register("chat", portSet{Name: "b", ID: 2})

	got, ok := PortsAs[portSet]("chat")
	if !ok || got.Name != "b" || got.ID != 2 {
		t.Fatalf("expected overwritten value, got %v ok=%v", got, ok)
	}
}

func TestRegistry_Reset(t *testing.T) {
	Reset()

	Register("x", portSet{Name: "x", ID: 9})
	Reset()
	if _, ok := PortsAs[portSet]("x"); ok {
		t.Fatal("expected registry to be empty after Reset")
	}
}
