// Package api defines the types crossing the clpeek client/server boundary.
package api

import "github.com/clpeek/clpeek/gpuinfo"

// DeviceDescriptor is the raw device identification submitted for
// classification, mirroring what an OpenCL platform query reports.
type DeviceDescriptor struct {
	VendorName    string   `json:"vendor_name"`
	DeviceName    string   `json:"device_name"`
	DeviceVersion string   `json:"device_version"`
	Extensions    []string `json:"extensions,omitempty"`
	SubGroupSizes []int    `json:"sub_group_sizes,omitempty"`

	Textures          gpuinfo.TextureSupport `json:"textures"`
	Image3DWrites     bool                   `json:"image3d_writes,omitempty"`
	GlobalMemoryBytes uint64                 `json:"global_memory,omitempty"`
}

// Raw converts the descriptor into the capability model's input form.
func (d DeviceDescriptor) Raw() gpuinfo.RawDeviceProperties {
	return gpuinfo.RawDeviceProperties{
		VendorName:        d.VendorName,
		DeviceName:        d.DeviceName,
		DeviceVersion:     d.DeviceVersion,
		Extensions:        d.Extensions,
		SubGroupSizes:     d.SubGroupSizes,
		Textures:          d.Textures,
		Image3DWrites:     d.Image3DWrites,
		GlobalMemoryBytes: d.GlobalMemoryBytes,
	}
}

// CapabilityReport is the resolved capability model with every query
// precomputed for transport.
type CapabilityReport struct {
	Vendor    string `json:"vendor"`
	Model     string `json:"model"`
	CLVersion string `json:"cl_version"`

	SupportsTextureArray bool `json:"supports_texture_array"`
	SupportsImageBuffer  bool `json:"supports_image_buffer"`
	SupportsImage3D      bool `json:"supports_image3d"`
	SupportsFP16         bool `json:"supports_fp16"`
	CL20OrHigher         bool `json:"cl20_or_higher"`

	WaveSizeFull     int `json:"wave_size_full"`
	WaveSizeHalf     int `json:"wave_size_half"`
	RegisterFileSize int `json:"register_file_size"`
	MaximumWaveCount int `json:"maximum_wave_count"`

	SubGroupSizes []int `json:"sub_group_sizes,omitempty"`
}

// NewCapabilityReport runs every capability query against the resolved
// device model.
func NewCapabilityReport(info gpuinfo.DeviceInfo) CapabilityReport {
	return CapabilityReport{
		Vendor:    info.Vendor.String(),
		Model:     info.Model(),
		CLVersion: info.CLVersion.String(),

		SupportsTextureArray: info.SupportsTextureArray(),
		SupportsImageBuffer:  info.SupportsImageBuffer(),
		SupportsImage3D:      info.SupportsImage3D(),
		SupportsFP16:         info.SupportsFP16(),
		CL20OrHigher:         info.IsCL20OrHigher(),

		WaveSizeFull:     info.Adreno.WaveSize(true),
		WaveSizeHalf:     info.Adreno.WaveSize(false),
		RegisterFileSize: info.Adreno.RegisterMemorySizePerComputeUnit(),
		MaximumWaveCount: info.Adreno.MaximumWaveCount(),

		SubGroupSizes: info.SubGroupSizes,
	}
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}
