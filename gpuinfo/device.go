package gpuinfo

import (
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"github.com/clpeek/clpeek/format"
)

// TextureSupport carries the raw 2D float texture flags reported by the
// platform layer, one per channel count and precision.
type TextureSupport struct {
	RF16    bool `json:"r_f16,omitempty"`
	RF32    bool `json:"r_f32,omitempty"`
	RGF16   bool `json:"rg_f16,omitempty"`
	RGF32   bool `json:"rg_f32,omitempty"`
	RGBF16  bool `json:"rgb_f16,omitempty"`
	RGBF32  bool `json:"rgb_f32,omitempty"`
	RGBAF16 bool `json:"rgba_f16,omitempty"`
	RGBAF32 bool `json:"rgba_f32,omitempty"`
}

// RawDeviceProperties is the unprocessed device identification reported by
// the OpenCL platform layer, the input to NewDeviceInfo.
type RawDeviceProperties struct {
	VendorName    string
	DeviceName    string
	DeviceVersion string
	Extensions    []string
	SubGroupSizes []int
	Textures      TextureSupport
	Image3DWrites bool

	// GlobalMemoryBytes is CL_DEVICE_GLOBAL_MEM_SIZE, zero if not reported.
	GlobalMemoryBytes uint64
}

// DeviceInfo is the resolved capability model for one device. It is built
// once by NewDeviceInfo and treated as read-only afterwards, so it can be
// queried concurrently without locking.
type DeviceInfo struct {
	Vendor    GpuVendor
	CLVersion OpenCLVersion
	Adreno    AdrenoInfo
	Mali      MaliInfo

	Textures          TextureSupport
	Image3DWrites     bool
	Extensions        []string
	SubGroupSizes     []int
	GlobalMemoryBytes uint64
}

// NewDeviceInfo resolves the raw identification strings into the typed
// model. Resolution is a pure function of the input: the same strings always
// produce the same enums.
func NewDeviceInfo(raw RawDeviceProperties) DeviceInfo {
	return DeviceInfo{
		Vendor:            ParseVendor(raw.VendorName),
		CLVersion:         ParseOpenCLVersion(raw.DeviceVersion),
		Adreno:            NewAdrenoInfo(raw.DeviceVersion),
		Mali:              NewMaliInfo(raw.DeviceName),
		Textures:          raw.Textures,
		Image3DWrites:     raw.Image3DWrites,
		Extensions:        slices.Clone(raw.Extensions),
		SubGroupSizes:     slices.Clone(raw.SubGroupSizes),
		GlobalMemoryBytes: raw.GlobalMemoryBytes,
	}
}

func (d DeviceInfo) SupportsTextureArray() bool {
	return d.CLVersion >= CL1_2
}

func (d DeviceInfo) SupportsImageBuffer() bool {
	return d.CLVersion >= CL1_2
}

func (d DeviceInfo) IsCL20OrHigher() bool {
	return d.CLVersion >= CL2_0
}

// SupportsImage3D reports whether 3D image writes are usable. On Midgard
// Mali the raw flag is overridden to false: read_imageh on image3d_t
// miscompiles there (observed on T880).
func (d DeviceInfo) SupportsImage3D() bool {
	if d.IsMali() && d.Mali.IsMidgard() {
		return false
	}
	return d.Image3DWrites
}

// SupportsFloatImage2D reports 2D float texture support for the given
// precision and channel count. Channel counts outside 1 through 4 are not a
// texture format and report false.
func (d DeviceInfo) SupportsFloatImage2D(dataType DataType, channels int) bool {
	switch channels {
	case 1:
		if dataType == Float32 {
			return d.Textures.RF32
		}
		return d.Textures.RF16
	case 2:
		if dataType == Float32 {
			return d.Textures.RGF32
		}
		return d.Textures.RGF16
	case 3:
		if dataType == Float32 {
			return d.Textures.RGBF32
		}
		return d.Textures.RGBF16
	case 4:
		if dataType == Float32 {
			return d.Textures.RGBAF32
		}
		return d.Textures.RGBAF16
	}
	return false
}

// SupportsExtension is an exact-match membership test, no substring or case
// folding.
func (d DeviceInfo) SupportsExtension(name string) bool {
	return lo.Contains(d.Extensions, name)
}

func (d DeviceInfo) SupportsSubGroupWithSize(size int) bool {
	return lo.Contains(d.SubGroupSizes, size)
}

func (d DeviceInfo) SupportsFP16() bool {
	return d.SupportsExtension("cl_khr_fp16")
}

func (d DeviceInfo) IsAdreno() bool  { return d.Vendor == VendorQualcomm }
func (d DeviceInfo) IsApple() bool   { return d.Vendor == VendorApple }
func (d DeviceInfo) IsMali() bool    { return d.Vendor == VendorMali }
func (d DeviceInfo) IsPowerVR() bool { return d.Vendor == VendorPowerVR }
func (d DeviceInfo) IsNvidia() bool  { return d.Vendor == VendorNvidia }
func (d DeviceInfo) IsAMD() bool     { return d.Vendor == VendorAMD }
func (d DeviceInfo) IsIntel() bool   { return d.Vendor == VendorIntel }

// Model is the resolved vendor-family model name, for diagnostics.
func (d DeviceInfo) Model() string {
	switch {
	case d.IsAdreno() && d.Adreno.Gpu != AdrenoUnknown:
		return d.Adreno.Gpu.String()
	case d.IsMali() && d.Mali.Gpu != MaliUnknown:
		return d.Mali.Gpu.String()
	}
	return "unknown"
}

// LogDetails reports the resolved model into the log at Info level.
func (d DeviceInfo) LogDetails() {
	slog.Info("opencl device",
		"vendor", d.Vendor.String(),
		"model", d.Model(),
		"cl_version", d.CLVersion.String(),
		"memory", format.HumanBytes2(d.GlobalMemoryBytes),
		"extensions", len(d.Extensions),
		"subgroup_sizes", d.SubGroupSizes,
	)
}
