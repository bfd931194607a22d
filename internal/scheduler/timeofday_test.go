package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"06:30", Clock(6, 30), false},
		{"23:59", Clock(23, 59), false},
		{"00:00", Clock(0, 0), false},
		{"24:00", TimeOfDay{}, true},
		{"9am", TimeOfDay{}, true},
		{"", TimeOfDay{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestTimeOfDay_On(t *testing.T) {
	got := Clock(18, 30).On(monday, time.UTC)
	assert.Equal(t, time.Date(2024, time.January, 15, 18, 30, 0, 0, time.UTC), got)
}

func TestTimeOfDay_YAML(t *testing.T) {
	var v struct {
		At TimeOfDay `yaml:"at"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`at: "07:45"`), &v))
	assert.Equal(t, Clock(7, 45), v.At)

	err := yaml.Unmarshal([]byte("at: [1, 2]"), &v)
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}
