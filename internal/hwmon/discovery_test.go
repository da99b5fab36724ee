package hwmon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover_SameSensorIsReturnedOnce(t *testing.T) {
	// GIVEN
	root := t.TempDir()
	dir := createChip(t, root, "hwmon0", map[string]string{
		"name":        "coretemp\n",
		"temp1_input": "45000\n",
		"temp1_max":   "100000\n",
	})
	patterns := []string{filepath.Join(root, "hwmon*", "temp*_*")}

	// WHEN
	result := Discover(patterns)

	// THEN
	assert.Equal(t, 1, result.Len())
	assert.True(t, result.Contains(Base(filepath.Join(dir, "temp1"))))
}

func TestDiscover_DeduplicatesAcrossPatterns(t *testing.T) {
	// GIVEN
	root := t.TempDir()
	dir := createChip(t, root, "hwmon0", map[string]string{
		"temp1_input": "45000\n",
		"temp2_input": "47000\n",
		"temp2_crit":  "105000\n",
	})
	patterns := []string{
		filepath.Join(root, "hwmon*", "temp*_*"),
		filepath.Join(root, "hwmon0", "temp*_input"),
	}

	// WHEN
	result := Discover(patterns)

	// THEN
	assert.Equal(t, []Base{
		Base(filepath.Join(dir, "temp1")),
		Base(filepath.Join(dir, "temp2")),
	}, result.Sorted())
}

func TestDiscover_MultipleChips(t *testing.T) {
	// GIVEN
	root := t.TempDir()
	createChip(t, root, "hwmon0", map[string]string{"temp1_input": "45000\n"})
	createChip(t, root, "hwmon1", map[string]string{"temp1_input": "30000\n"})
	createChip(t, root, "other0", map[string]string{"temp1_input": "30000\n"})
	patterns := []string{filepath.Join(root, "hwmon*", "temp*_*")}

	// WHEN
	result := Discover(patterns)

	// THEN
	assert.Equal(t, 2, result.Len())
	assert.True(t, result.Contains(Base(filepath.Join(root, "hwmon0", "temp1"))))
	assert.True(t, result.Contains(Base(filepath.Join(root, "hwmon1", "temp1"))))
}

func TestDiscover_DeviceRelativeLayout(t *testing.T) {
	// GIVEN
	root := t.TempDir()
	dir := createChip(t, root, filepath.Join("hwmon2", "device"), map[string]string{
		"name":        "it8728\n",
		"temp3_input": "38000\n",
	})
	patterns := []string{filepath.Join(root, "hwmon*", "device", "temp*_*")}

	// WHEN
	result := Discover(patterns)

	// THEN
	assert.Equal(t, []Base{Base(filepath.Join(dir, "temp3"))}, result.Sorted())
}

func TestDiscover_SkipsFilesWithoutSuffix(t *testing.T) {
	// GIVEN
	root := t.TempDir()
	createChip(t, root, "hwmon0", map[string]string{
		"temp1":       "45000\n",
		"temp2_input": "45000\n",
	})
	patterns := []string{filepath.Join(root, "hwmon*", "temp*")}

	// WHEN
	result := Discover(patterns)

	// THEN
	assert.Equal(t, []Base{Base(filepath.Join(root, "hwmon0", "temp2"))}, result.Sorted())
}

func TestDiscover_SkipsUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	// GIVEN
	root := t.TempDir()
	readable := createChip(t, root, "hwmon0", map[string]string{
		"name":        "coretemp\n",
		"temp1_input": "45000\n",
	})
	unreadable := createChip(t, root, "hwmon1", map[string]string{
		"name":        "nvme\n",
		"temp1_input": "30000\n",
	})
	require.NoError(t, os.Chmod(unreadable, 0000))
	t.Cleanup(func() {
		_ = os.Chmod(unreadable, 0755)
	})

	// WHEN
	result := Discover([]string{filepath.Join(root, "hwmon*", "temp*_*")})

	// THEN
	assert.Equal(t, []Base{Base(filepath.Join(readable, "temp1"))}, result.Sorted())
}

func TestDiscover_NoMatches(t *testing.T) {
	// GIVEN
	root := t.TempDir()
	patterns := []string{
		filepath.Join(root, "hwmon*", "temp*_*"),
		filepath.Join(root, "missing", "hwmon*", "temp*_*"),
	}

	// WHEN
	result := Discover(patterns)

	// THEN
	assert.Equal(t, 0, result.Len())
}

func TestDiscover_MalformedPatternPanics(t *testing.T) {
	assert.Panics(t, func() {
		Discover([]string{"/sys/class/hwmon/hwmon[/temp*_*"})
	})
}

func TestValidatePattern(t *testing.T) {
	for _, pattern := range DefaultPatterns {
		assert.NoError(t, ValidatePattern(pattern), pattern)
	}
	assert.Error(t, ValidatePattern(""))
	assert.Error(t, ValidatePattern("/sys/class/hwmon/hwmon[/temp*_*"))
	assert.Error(t, ValidatePattern("/a/b["))
	assert.Error(t, ValidatePattern("/a/*/["))
	assert.Error(t, ValidatePattern("/sys/class/hwmon/hwmon*/temp[_*"))
	assert.Error(t, ValidatePattern(`/sys/class/hwmon/hwmon*/temp\`))
}

func TestDiscover_MalformedSegmentAfterWildcardPanics(t *testing.T) {
	// GIVEN
	root := t.TempDir()
	createChip(t, root, "hwmon0", map[string]string{
		"name":        "coretemp\n",
		"temp1_input": "45000\n",
	})

	// THEN
	assert.Panics(t, func() {
		Discover([]string{filepath.Join(root, "hwmon*", "temp[_*")})
	})
}

func TestBaseOf(t *testing.T) {
	tests := []struct {
		path     string
		expected Base
		ok       bool
	}{
		{"/sys/class/hwmon/hwmon0/temp1_input", "/sys/class/hwmon/hwmon0/temp1", true},
		{"/sys/class/hwmon/hwmon0/temp1_max", "/sys/class/hwmon/hwmon0/temp1", true},
		{"/sys/class/hwmon/hwmon0/temp12_crit_alarm", "/sys/class/hwmon/hwmon0/temp12", true},
		{"/sys/devices/platform/coretemp.0/hwmon/hwmon3/temp2_label", "/sys/devices/platform/coretemp.0/hwmon/hwmon3/temp2", true},
		{"/sys/devices/some_dir/hwmon0/temp1_input", "/sys/devices/some_dir/hwmon0/temp1", true},
		{"/sys/class/hwmon/hwmon0/temp1", "", false},
		{"/sys/class/hwmon/hwmon0/_input", "", false},
	}
	for _, tt := range tests {
		result, ok := BaseOf(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.expected, result, tt.path)
	}
}
