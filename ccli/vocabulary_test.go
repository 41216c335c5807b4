package ccli

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		program Program
		command Command
		wantErr bool
	}{
		{ProgramAccount, "list-companies", false},
		{ProgramAccount, "remove-address", false},
		{ProgramProject, "make-quote", false},
		{ProgramProject, "complete-task", false},
		{ProgramSchedule, "add", false},
		{ProgramFinance, "report", false},
		{ProgramFinance, "list", true},
		{ProgramAccount, "remove-contract", true},
		{"billing", "list", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.program)+" "+string(tt.command), func(t *testing.T) {
			err := Validate(tt.program, tt.command)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownCommand) {
				t.Errorf("expected ErrUnknownCommand, got %v", err)
			}
		})
	}
}

func TestVocabularyCoversPrograms(t *testing.T) {
	for _, p := range Programs() {
		if len(Vocabulary[p]) == 0 {
			t.Errorf("program %s has no commands", p)
		}
	}
	if len(Vocabulary) != len(Programs()) {
		t.Errorf("Vocabulary has %d programs, Programs() lists %d", len(Vocabulary), len(Programs()))
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("yaml"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}
