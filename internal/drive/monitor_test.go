package drive

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		uri     string
		account string
		want    bool
	}{
		{"google-drive://u@example/", "u@example", true},
		{"google-drive://u@example/sync/docs", "u@example", true},
		{"google-drive://x@example/", "u@example", false},
		{"smb://nas/u@example", "u@example", false},
		{"file:///media/usb", "u@example", false},
		{"", "u@example", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matches(tt.uri, tt.account), "matches(%q, %q)", tt.uri, tt.account)
	}
}

func TestAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitor := NewMockMonitor(ctrl)

	monitor.EXPECT().Mounts(gomock.Any()).Return([]MountPoint{
		{URI: "smb://nas/share"},
		{URI: "google-drive://u@example/"},
	}, nil)

	assert.True(t, Available(context.Background(), monitor, "u@example"))
}

func TestAvailable_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitor := NewMockMonitor(ctrl)

	monitor.EXPECT().Mounts(gomock.Any()).Return([]MountPoint{
		{URI: "google-drive://someone-else@example/"},
	}, nil)

	assert.False(t, Available(context.Background(), monitor, "u@example"))
}

func TestAvailable_EnumerationErrorCountsAsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitor := NewMockMonitor(ctrl)

	monitor.EXPECT().Mounts(gomock.Any()).Return(nil, fmt.Errorf("monitor unavailable"))

	assert.False(t, Available(context.Background(), monitor, "u@example"))
}
