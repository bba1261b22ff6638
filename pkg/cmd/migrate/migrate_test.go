package migrate

import "testing"

func TestPrepareURLForDB(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"postgresql://u:p@db:5432/f1", "postgresql://u:p@db:5432/f1?sslmode=disable"},
		{"postgresql://db/f1?pool_max_conns=2", "postgresql://db/f1?pool_max_conns=2&sslmode=disable"},
		{"postgresql://db/f1?sslmode=require", "postgresql://db/f1?sslmode=require"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := prepareURLForDB(tt.url); got != tt.want {
				t.Errorf("prepareURLForDB() = %v, want %v", got, tt.want)
			}
		})
	}
}
