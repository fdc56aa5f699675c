package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/connectn/internal/connectn"
)

func fixedPlayer(opts Options) (connectn.Player, error) {
	return connectn.PlayerFunc{
		PlayerName: opts.Name,
		DecideFunc: func(*connectn.Board, connectn.Color) (int, error) { return 0, nil },
	}, nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register(StrategyInfo{ID: "test-fixed", Description: "always column 1"}, fixedPlayer)

	if !Exists("test-fixed") {
		t.Fatal("strategy should exist after Register")
	}

	p, err := Create("test-fixed", Options{Name: "Fixie"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if p.Name() != "Fixie" {
		t.Errorf("Name() = %q, want %q", p.Name(), "Fixie")
	}

	info, ok := Lookup("test-fixed")
	if !ok || info.Description != "always column 1" {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(StrategyInfo{ID: "test-dup"}, fixedPlayer)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(StrategyInfo{ID: "test-dup"}, fixedPlayer)
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-strategy", Options{}); err == nil {
		t.Error("Create() of unknown strategy should fail")
	}
}

func TestCreateWrapsFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register(StrategyInfo{ID: "test-broken"}, func(Options) (connectn.Player, error) {
		return nil, boom
	})

	if _, err := Create("test-broken", Options{}); !errors.Is(err, boom) {
		t.Errorf("Create() = %v, want wrapped %v", err, boom)
	}
}

func TestListSorted(t *testing.T) {
	Register(StrategyInfo{ID: "test-zz"}, fixedPlayer)
	Register(StrategyInfo{ID: "test-aa"}, fixedPlayer)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}
