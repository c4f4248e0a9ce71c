// Package gpuinfo models what a specific OpenCL GPU can do. Raw
// identification strings reported by the platform layer (vendor name, device
// name, device version, extension and sub-group lists) are resolved once into
// typed enums; every query afterwards is a pure read of the resolved state,
// so a DeviceInfo can be shared across goroutines without locking.
//
// Hardware the classification tables do not know about resolves to an
// explicit Unknown value, and capability queries on unknown hardware return
// the most conservative answer rather than failing.
package gpuinfo

import (
	"regexp"
	"strconv"
	"strings"
)

// GpuVendor identifies the GPU hardware vendor reported by the OpenCL
// platform.
type GpuVendor int

const (
	VendorApple GpuVendor = iota
	VendorQualcomm
	VendorMali
	VendorPowerVR
	VendorNvidia
	VendorAMD
	VendorIntel
	VendorUnknown

	vendorCount // keep last
)

// String covers every declared vendor. TestGpuVendorStringExhaustive fails
// if a new vendor is added without a branch here.
func (v GpuVendor) String() string {
	switch v {
	case VendorApple:
		return "Apple"
	case VendorQualcomm:
		return "Qualcomm"
	case VendorMali:
		return "Mali"
	case VendorPowerVR:
		return "PowerVR"
	case VendorNvidia:
		return "NVIDIA"
	case VendorAMD:
		return "AMD"
	case VendorIntel:
		return "Intel"
	}
	return "unknown vendor"
}

// ParseVendor classifies a raw platform vendor string. Unrecognized input
// yields VendorUnknown.
func ParseVendor(raw string) GpuVendor {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "apple"):
		return VendorApple
	case strings.Contains(s, "qualcomm"), strings.Contains(s, "adreno"):
		return VendorQualcomm
	case strings.Contains(s, "mali"), strings.Contains(s, "arm"):
		return VendorMali
	case strings.Contains(s, "powervr"), strings.Contains(s, "imagination"):
		return VendorPowerVR
	case strings.Contains(s, "nvidia"):
		return VendorNvidia
	case strings.Contains(s, "advanced micro devices"), strings.Contains(s, "amd"):
		return VendorAMD
	case strings.Contains(s, "intel"):
		return VendorIntel
	}
	return VendorUnknown
}

// OpenCLVersion is the API revision reported by the driver. Values are
// ordered by release, so versions compare directly with <, >= and friends.
type OpenCLVersion int

const (
	CL1_0 OpenCLVersion = iota
	CL1_1
	CL1_2
	CL2_0
	CL2_1
	CL2_2
	CL3_0

	clVersionCount // keep last
)

func (v OpenCLVersion) String() string {
	switch v {
	case CL1_0:
		return "1.0"
	case CL1_1:
		return "1.1"
	case CL1_2:
		return "1.2"
	case CL2_0:
		return "2.0"
	case CL2_1:
		return "2.1"
	case CL2_2:
		return "2.2"
	case CL3_0:
		return "3.0"
	}
	return "1.0"
}

var clVersionRegex = regexp.MustCompile(`(\d+)\.(\d+)`)

// ParseOpenCLVersion extracts the numeric OpenCL revision from a device
// version string such as "OpenCL 2.0 Adreno(TM) 640" or a bare "1.2".
// Unparseable or unmodeled revisions degrade to CL1_0, the most conservative
// assumption.
func ParseOpenCLVersion(s string) OpenCLVersion {
	m := clVersionRegex.FindStringSubmatch(s)
	if m == nil {
		return CL1_0
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return CL1_0
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return CL1_0
	}
	switch {
	case major == 1 && minor == 0:
		return CL1_0
	case major == 1 && minor == 1:
		return CL1_1
	case major == 1 && minor == 2:
		return CL1_2
	case major == 2 && minor == 0:
		return CL2_0
	case major == 2 && minor == 1:
		return CL2_1
	case major == 2 && minor == 2:
		return CL2_2
	case major == 3 && minor == 0:
		return CL3_0
	}
	return CL1_0
}

// DataType selects the floating point precision of a texture query.
type DataType int

const (
	Float32 DataType = iota
	Float16
)

func (d DataType) String() string {
	if d == Float16 {
		return "fp16"
	}
	return "fp32"
}
