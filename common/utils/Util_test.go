package utils

import (
	"testing"
)

func TestGenerateTradeNo(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		no := GenerateTradeNo("AL")
		if len(no) > 20 {
			t.Fatalf("trade no %q exceeds 20 characters", no)
		}
		if no[:2] != "AL" {
			t.Fatalf("trade no %q missing prefix", no)
		}
		seen[no] = true
	}
	// 同秒内靠随机尾数区分, 100次全撞的机率可忽略
	if len(seen) < 2 {
		t.Error("trade numbers are not varying")
	}
}

func TestGetRandomString(t *testing.T) {
	t.Run("number only", func(t *testing.T) {
		s := GetRandomString(8, NUMBER, MIX)
		if len(s) != 8 {
			t.Fatalf("length = %d, want 8", len(s))
		}
		for _, c := range s {
			if c < '0' || c > '9' {
				t.Errorf("non digit rune %q in %q", c, s)
			}
		}
	})

	t.Run("requested length", func(t *testing.T) {
		for _, n := range []int{1, 4, 16, 32} {
			if s := GetRandomString(n, ALL, MIX); len(s) != n {
				t.Errorf("GetRandomString(%d) length = %d", n, len(s))
			}
		}
	})
}

func TestIPChecker(t *testing.T) {
	tests := []struct {
		name      string
		ip        string
		whiteList string
		want      bool
	}{
		{"empty list allows all", "1.2.3.4", "", true},
		{"listed ip", "175.99.72.1", "175.99.72.1;175.99.72.2", true},
		{"listed ip comma separated", "175.99.72.2", "175.99.72.1,175.99.72.2", true},
		{"unlisted ip", "10.0.0.9", "175.99.72.1;175.99.72.2", false},
		{"partial match rejected", "175.99.72.10", "175.99.72.1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IPChecker(tt.ip, tt.whiteList); got != tt.want {
				t.Errorf("IPChecker(%q, %q) = %v, want %v", tt.ip, tt.whiteList, got, tt.want)
			}
		})
	}
}
