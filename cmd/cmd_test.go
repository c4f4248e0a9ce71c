package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clpeek/clpeek/api"
	"github.com/clpeek/clpeek/gpuinfo"
)

func TestDescriptorFromFlags(t *testing.T) {
	cli := NewCLI()
	classify, _, err := cli.Find([]string{"classify"})
	require.NoError(t, err)

	require.NoError(t, classify.Flags().Set("vendor", "Qualcomm"))
	require.NoError(t, classify.Flags().Set("device-version", "OpenCL 2.0 Adreno(TM) 640"))

	desc, err := descriptorFromFlags(classify)
	require.NoError(t, err)
	assert.Equal(t, "Qualcomm", desc.VendorName)
	assert.Equal(t, "OpenCL 2.0 Adreno(TM) 640", desc.DeviceVersion)
}

func TestDescriptorFromFlagsEmpty(t *testing.T) {
	cli := NewCLI()
	classify, _, err := cli.Find([]string{"classify"})
	require.NoError(t, err)

	_, err = descriptorFromFlags(classify)
	require.Error(t, err)
}

func TestDescriptorFromInputFile(t *testing.T) {
	desc := api.DeviceDescriptor{
		VendorName:    "ARM",
		DeviceName:    "Mali-G78",
		DeviceVersion: "OpenCL 2.0 v1.r26p0",
	}
	data, err := json.Marshal(desc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "device.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cli := NewCLI()
	classify, _, err := cli.Find([]string{"classify"})
	require.NoError(t, err)
	require.NoError(t, classify.Flags().Set("input", path))

	parsed, err := descriptorFromFlags(classify)
	require.NoError(t, err)
	assert.Equal(t, "Mali-G78", parsed.DeviceName)

	info := gpuinfo.NewDeviceInfo(parsed.Raw())
	assert.True(t, info.Mali.IsValhall())
}

func TestPrettyPrintReport(t *testing.T) {
	desc := &api.DeviceDescriptor{GlobalMemoryBytes: 4 << 30}
	info := gpuinfo.NewDeviceInfo(gpuinfo.RawDeviceProperties{
		VendorName:    "Qualcomm",
		DeviceVersion: "OpenCL C 2.0 Adreno(TM) 640",
		SubGroupSizes: []int{64, 128},
	})
	report := api.NewCapabilityReport(info)

	var buf bytes.Buffer
	prettyPrintReport(&buf, desc, &report)

	out := buf.String()
	assert.Contains(t, out, "Adreno 640")
	assert.Contains(t, out, "Qualcomm")
	assert.Contains(t, out, "128 (full) / 64 (half)")
	assert.Contains(t, out, "295K")
	assert.Contains(t, out, "64, 128")
	assert.Contains(t, out, "4.0 GiB")
}
