package service

import (
	"context"
	"testing"

	"paychat/internal/platform/testkit"
	"paychat/internal/services/payroll/domain"
	"paychat/internal/services/payroll/repo"
)

func rec(id, name, comp string, bonus, net float64) domain.Record {
	return domain.Record{
		EmployeeID: id, Name: name, Competency: comp,
		Bonus: bonus, NetPay: net, PaymentDate: comp + "-28",
	}
}

func demoLedger() *repo.Memory {
	return repo.NewMemory([]domain.Record{
		rec("E001", "Ana Souza", "2025-01", 500, 7725.0),
		rec("E001", "Ana Souza", "2025-02", 0, 7447.5),
		rec("E001", "Ana Souza", "2025-03", 800, 8048.75),
		rec("E001", "Ana Souza", "2025-04", 0, 7586.25),
		rec("E001", "Ana Souza", "2025-05", 1200, 8418.75),
		rec("E001", "Ana Souza", "2025-06", 300, 7586.25),
		rec("E002", "Bruno Lima", "2025-01", 500, 6095.0),
		rec("E002", "Bruno Lima", "2025-02", 0, 5817.5),
		rec("E002", "Bruno Lima", "2025-03", 800, 6418.75),
		rec("E002", "Bruno Lima", "2025-04", 0, 5756.25),
		rec("E002", "Bruno Lima", "2025-05", 1200, 6788.75),
		rec("E002", "Bruno Lima", "2025-06", 300, 5956.25),
	})
}

func TestNew_NilRepoPanics(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { New(nil) })
}

func TestRecordsForPeriod(t *testing.T) {
	t.Parallel()
	svc := New(demoLedger())

	out, err := svc.RecordsForPeriod(context.Background(), "E001", "2025-05")
	if err != nil {
		t.Fatalf("RecordsForPeriod: %v", err)
	}
	if len(out) != 1 || out[0].NetPay != 8418.75 {
		t.Fatalf("E001 2025-05 = %+v", out)
	}
}

func TestQuarterRecords(t *testing.T) {
	t.Parallel()
	svc := New(demoLedger())

	out, err := svc.QuarterRecords(context.Background(), "E001", 2025, 1)
	if err != nil {
		t.Fatalf("QuarterRecords: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("quarter rows = %d, want 3", len(out))
	}
	var sum float64
	for _, r := range out {
		sum += r.NetPay
	}
	if want := 7725.0 + 7447.5 + 8048.75; sum != want {
		t.Fatalf("quarter sum = %v, want %v", sum, want)
	}

	none, err := svc.QuarterRecords(context.Background(), "E001", 2024, 1)
	if err != nil || len(none) != 0 {
		t.Fatalf("wrong year should be empty, got %v %v", none, err)
	}
}

func TestMaxBonus(t *testing.T) {
	t.Parallel()
	svc := New(demoLedger())

	out, err := svc.MaxBonus(context.Background(), "E002")
	if err != nil {
		t.Fatalf("MaxBonus: %v", err)
	}
	if len(out) != 1 || out[0].Bonus != 1200 || out[0].Competency != "2025-05" {
		t.Fatalf("max bonus = %+v", out)
	}
}

func TestMaxBonus_TiesKeepLedgerOrder(t *testing.T) {
	t.Parallel()
	svc := New(repo.NewMemory([]domain.Record{
		rec("E001", "Ana Souza", "2025-01", 700, 1),
		rec("E001", "Ana Souza", "2025-02", 700, 2),
		rec("E001", "Ana Souza", "2025-03", 100, 3),
	}))

	out, err := svc.MaxBonus(context.Background(), "E001")
	if err != nil {
		t.Fatalf("MaxBonus: %v", err)
	}
	if len(out) != 2 || out[0].Competency != "2025-01" || out[1].Competency != "2025-02" {
		t.Fatalf("ties = %+v", out)
	}
}

func TestMaxBonus_Empty(t *testing.T) {
	t.Parallel()
	svc := New(repo.NewMemory(nil))

	out, err := svc.MaxBonus(context.Background(), "E001")
	if err != nil || out != nil {
		t.Fatalf("empty ledger = %v %v", out, err)
	}
}

func TestLatest(t *testing.T) {
	t.Parallel()
	svc := New(demoLedger())

	r, ok, err := svc.Latest(context.Background(), "E001")
	if err != nil || !ok {
		t.Fatalf("Latest: ok=%v err=%v", ok, err)
	}
	if r.Competency != "2025-06" {
		t.Fatalf("latest = %s", r.Competency)
	}

	_, ok, err = svc.Latest(context.Background(), "E999")
	if err != nil || ok {
		t.Fatalf("unknown employee should not be found")
	}
}

func TestEmployees_FirstSeenOrder(t *testing.T) {
	t.Parallel()
	svc := New(demoLedger())

	out, err := svc.Employees(context.Background())
	if err != nil {
		t.Fatalf("Employees: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("employees = %+v", out)
	}
	if out[0].EmployeeID != "E001" || out[0].Name != "Ana Souza" || out[0].Records != 6 {
		t.Fatalf("first employee = %+v", out[0])
	}
	if out[1].EmployeeID != "E002" || out[1].Records != 6 {
		t.Fatalf("second employee = %+v", out[1])
	}
}

func TestToEvidence(t *testing.T) {
	t.Parallel()

	ev := ToEvidence([]domain.Record{rec("E001", "Ana Souza", "2025-05", 1200, 8418.75)})
	if len(ev) != 1 {
		t.Fatalf("evidence = %+v", ev)
	}
	if ev[0].EmployeeID != "E001" || ev[0].Competency != "2025-05" || ev[0].NetPay != 8418.75 {
		t.Fatalf("projection = %+v", ev[0])
	}
}
