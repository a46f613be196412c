package types

import "testing"

func TestValidOutcomeStatus(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{
			name: "待定",
			in:   "pending",
			want: true,
		},
		{
			name: "已回应",
			in:   "responded",
			want: true,
		},
		{
			name: "已付费",
			in:   "paid",
			want: true,
		},
		{
			name: "失联",
			in:   "ghosted",
			want: true,
		},
		{
			name: "大写输入",
			in:   "PAID",
			want: true,
		},
		{
			name: "未知状态",
			in:   "converted",
			want: false,
		},
		{
			name: "空字符串",
			in:   "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidOutcomeStatus(tt.in); got != tt.want {
				t.Errorf("ValidOutcomeStatus(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
