package core

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantErr error
	}{
		{
			name:    "valid message",
			message: "Yoshlar uchun qanday imtiyozlar bor?",
			wantErr: nil,
		},
		{
			name:    "single character",
			message: "a",
			wantErr: nil,
		},
		{
			name:    "empty message",
			message: "",
			wantErr: ErrEmptyMessage,
		},
		{
			name:    "at the limit",
			message: strings.Repeat("a", MaxMessageLength),
			wantErr: nil,
		},
		{
			name:    "over the limit",
			message: strings.Repeat("a", MaxMessageLength+1),
			wantErr: ErrMessageTooLong,
		},
		{
			name:    "multibyte runes counted as characters",
			message: strings.Repeat("ў", MaxMessageLength),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMessage(tt.message)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateMessage() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBusinessContext(t *testing.T) {
	intPtr := func(n int) *int { return &n }
	floatPtr := func(f float64) *float64 { return &f }

	tests := []struct {
		name    string
		bc      *BusinessContext
		wantErr error
	}{
		{
			name:    "nil context",
			bc:      nil,
			wantErr: nil,
		},
		{
			name:    "empty context",
			bc:      &BusinessContext{},
			wantErr: nil,
		},
		{
			name: "complete context",
			bc: &BusinessContext{
				Industry:         "IT",
				EmployeeCount:    intPtr(12),
				AnnualRevenue:    floatPtr(500000),
				Region:           "Toshkent",
				YearsInOperation: intPtr(2),
			},
			wantErr: nil,
		},
		{
			name:    "zero employee count",
			bc:      &BusinessContext{EmployeeCount: intPtr(0)},
			wantErr: nil,
		},
		{
			name:    "negative employee count",
			bc:      &BusinessContext{EmployeeCount: intPtr(-1)},
			wantErr: ErrNegativeEmployeeCount,
		},
		{
			name:    "negative revenue",
			bc:      &BusinessContext{AnnualRevenue: floatPtr(-100)},
			wantErr: ErrNegativeRevenue,
		},
		{
			name:    "negative years",
			bc:      &BusinessContext{YearsInOperation: intPtr(-3)},
			wantErr: ErrNegativeYears,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBusinessContext(tt.bc)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateBusinessContext() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
