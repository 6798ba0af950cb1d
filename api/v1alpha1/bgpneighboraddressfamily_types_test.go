// SPDX-FileCopyrightText: 2026 The bgpaf-operator authors
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import "testing"

func TestToggle_BoolOrDefault(t *testing.T) {
	tests := []struct {
		name   string
		toggle Toggle
		def    bool
		want   bool
	}{
		{
			name:   "enabled ignores default",
			toggle: ToggleEnabled,
			def:    false,
			want:   true,
		},
		{
			name:   "disabled ignores default",
			toggle: ToggleDisabled,
			def:    true,
			want:   false,
		},
		{
			name:   "absent falls back to default true",
			toggle: "",
			def:    true,
			want:   true,
		},
		{
			name:   "absent falls back to default false",
			toggle: "",
			def:    false,
			want:   false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.toggle.BoolOrDefault(test.def); got != test.want {
				t.Errorf("BoolOrDefault(%v) = %v, want %v", test.def, got, test.want)
			}
		})
	}
}
