// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		validator FlagValidatorType
		wantErr   bool
	}{
		{name: "output text", value: "text", validator: OutputValidator},
		{name: "output yaml", value: "yaml", validator: OutputValidator},
		{name: "output xml", value: "xml", validator: OutputValidator, wantErr: true},
		{name: "policy fill", value: "fill", validator: PolicyValidator},
		{name: "policy truncate", value: "truncate", validator: PolicyValidator},
		{name: "policy empty", value: "", validator: PolicyValidator, wantErr: true},
		{name: "count 5", value: 5, validator: CountValidator},
		{name: "count 0", value: 0, validator: CountValidator, wantErr: true},
		{name: "count 1", value: 1, validator: CountValidator},
		{name: "count 6", value: 6, validator: CountValidator, wantErr: true},
		{name: "count 51", value: 51, validator: CountValidator, wantErr: true},
		{name: "count string", value: "5", validator: CountValidator, wantErr: true},
		{name: "jammed", value: "--output", validator: JammedFlagValidator, wantErr: true},
		{name: "not jammed", value: "holidays.json", validator: JammedFlagValidator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FlagValidators(tt.value, tt.validator)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
