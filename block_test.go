package lz5

import "testing"

func TestBlock_IsBetter(t *testing.T) {
	tests := []struct {
		name string
		a, b Block
		want bool
	}{
		{
			name: "more consumed wins",
			a:    Block{NumBytesConsumed: 10, Data: make([]byte, 3)},
			b:    Block{NumBytesConsumed: 5, Data: make([]byte, 1)},
			want: true,
		},
		{
			name: "less consumed loses even with smaller data",
			a:    Block{NumBytesConsumed: 5, Data: make([]byte, 1)},
			b:    Block{NumBytesConsumed: 10, Data: make([]byte, 3)},
			want: false,
		},
		{
			name: "tie on consumed, smaller encoding wins",
			a:    Block{NumBytesConsumed: 10, Data: make([]byte, 2)},
			b:    Block{NumBytesConsumed: 10, Data: make([]byte, 3)},
			want: true,
		},
		{
			name: "tie on consumed, larger encoding loses",
			a:    Block{NumBytesConsumed: 10, Data: make([]byte, 3)},
			b:    Block{NumBytesConsumed: 10, Data: make([]byte, 2)},
			want: false,
		},
		{
			name: "exact tie is not better",
			a:    Block{NumBytesConsumed: 10, Data: make([]byte, 2)},
			b:    Block{NumBytesConsumed: 10, Data: make([]byte, 2)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.isBetter(tt.b); got != tt.want {
				t.Fatalf("isBetter() = %v, want %v", got, tt.want)
			}
		})
	}
}
