package module

import (
	"testing"

	"paychat/internal/modkit/httpkit"
)

// LedgerPort is a tiny test interface that Ports() payloads can implement
type LedgerPort interface {
	RecordCount() int
}

type ledgerImpl struct{ n int }

func (l ledgerImpl) RecordCount() int { return l.n }

// fakeModule is a small module double for tests
type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string               { return m.name }
func (m fakeModule) Ports() PortSet             { return m.ports }
func (m fakeModule) MountRoutes(httpkit.Router) {}

func TestPortsOf_NilPorts(t *testing.T) {
	t.Parallel()

	m := fakeModule{name: "nilPorts", ports: nil}
	if _, ok := PortsOf[LedgerPort](m); ok {
		t.Fatalf("expected ok=false when Ports() is nil")
	}
}

func TestPortsOf_DirectInterfaceMatch(t *testing.T) {
	t.Parallel()

	m := fakeModule{name: "direct", ports: LedgerPort(ledgerImpl{n: 12})}

	got, ok := PortsOf[LedgerPort](m)
	if !ok {
		t.Fatalf("expected ok=true for direct interface match")
	}
	if got.RecordCount() != 12 {
		t.Fatalf("RecordCount = %d, want 12", got.RecordCount())
	}
}

func TestPortsOf_StructBundle_ExportedField(t *testing.T) {
	t.Parallel()

	type Ports struct {
		Ledger LedgerPort
		Extra  int
	}
	m := fakeModule{name: "bundle", ports: Ports{Ledger: ledgerImpl{n: 6}, Extra: 1}}

	got, ok := PortsOf[LedgerPort](m)
	if !ok {
		t.Fatalf("expected ok=true when bundle has an exported field")
	}
	if got.RecordCount() != 6 {
		t.Fatalf("RecordCount = %d, want 6", got.RecordCount())
	}
}

func TestPortsOf_StructBundle_UnexportedField_Ignored(t *testing.T) {
	t.Parallel()

	type ports struct {
		ledger LedgerPort
	}
	m := fakeModule{name: "hidden", ports: ports{ledger: ledgerImpl{n: 3}}}

	if _, ok := PortsOf[LedgerPort](m); ok {
		t.Fatalf("expected unexported fields to be ignored")
	}
}

func TestMustPortsOf_PanicsWhenMissing(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing port")
		}
	}()
	m := fakeModule{name: "empty", ports: struct{}{}}
	_ = MustPortsOf[LedgerPort](m)
}
