package gpuinfo

import "strings"

// AdrenoGpu is a specific Qualcomm Adreno model.
type AdrenoGpu int

const (
	AdrenoUnknown AdrenoGpu = iota
	Adreno120
	Adreno130
	Adreno200
	Adreno203
	Adreno205
	Adreno220
	Adreno225
	Adreno304
	Adreno305
	Adreno306
	Adreno308
	Adreno320
	Adreno330
	Adreno405
	Adreno418
	Adreno420
	Adreno430
	Adreno504
	Adreno505
	Adreno506
	Adreno508
	Adreno509
	Adreno510
	Adreno512
	Adreno530
	Adreno540
	Adreno605
	Adreno610
	Adreno612
	Adreno615
	Adreno616
	Adreno618
	Adreno620
	Adreno630
	Adreno640
	Adreno650
	Adreno675
	Adreno680
	Adreno685
)

// adrenoModels maps model-number substrings of the device version string to
// models, newest series first. Resolution returns the first entry whose key
// occurs in the input, so the scan order is part of the contract; keys must
// be unique, enforced at init.
var adrenoModels = []struct {
	key string
	gpu AdrenoGpu
}{
	// 6xx series
	{"685", Adreno685},
	{"680", Adreno680},
	{"675", Adreno675},
	{"650", Adreno650},
	{"640", Adreno640},
	{"630", Adreno630},
	{"620", Adreno620},
	{"618", Adreno618},
	{"616", Adreno616},
	{"615", Adreno615},
	{"612", Adreno612},
	{"610", Adreno610},
	{"605", Adreno605},
	// 5xx series
	{"540", Adreno540},
	{"530", Adreno530},
	{"512", Adreno512},
	{"510", Adreno510},
	{"509", Adreno509},
	{"508", Adreno508},
	{"506", Adreno506},
	{"505", Adreno505},
	{"504", Adreno504},
	// 4xx series
	{"430", Adreno430},
	{"420", Adreno420},
	{"418", Adreno418},
	{"405", Adreno405},
	// 3xx series
	{"330", Adreno330},
	{"320", Adreno320},
	{"308", Adreno308},
	{"306", Adreno306},
	{"305", Adreno305},
	{"304", Adreno304},
	// 2xx series
	{"225", Adreno225},
	{"220", Adreno220},
	{"205", Adreno205},
	{"203", Adreno203},
	{"200", Adreno200},
	// 1xx series
	{"130", Adreno130},
	{"120", Adreno120},
}

var (
	adrenoNames    = map[AdrenoGpu]string{}
	adrenoFamilies = map[AdrenoGpu]int{}
)

func init() {
	seen := map[string]bool{}
	for _, m := range adrenoModels {
		if seen[m.key] {
			panic("gpuinfo: duplicate adreno model key " + m.key)
		}
		seen[m.key] = true
		adrenoNames[m.gpu] = "Adreno " + m.key
		adrenoFamilies[m.gpu] = int(m.key[0] - '0')
	}
}

func (g AdrenoGpu) String() string {
	if name, ok := adrenoNames[g]; ok {
		return name
	}
	return "unknown"
}

// ParseAdrenoGpu resolves a device version string such as
// "OpenCL 2.0 Adreno(TM) 640" to a model. Unmatched input yields
// AdrenoUnknown.
func ParseAdrenoGpu(deviceVersion string) AdrenoGpu {
	for _, m := range adrenoModels {
		if strings.Contains(deviceVersion, m.key) {
			return m.gpu
		}
	}
	return AdrenoUnknown
}

// Per-model occupancy constants for the 6xx series. Models absent from
// these maps use the series defaults. Units for the register file are
// scalar registers per compute unit.
var adrenoRegisterFileSizes = map[AdrenoGpu]int{
	Adreno640: 128 * 144 * 16,
	Adreno650: 128 * 64 * 16,
}

const adrenoDefaultRegisterFileSize = 128 * 96 * 16

var adrenoMaxWaves = map[AdrenoGpu]int{
	Adreno640: 30,
}

const adrenoDefaultMaxWaves = 16

// AdrenoInfo answers capability questions about one resolved Adreno model.
// The zero value reports AdrenoUnknown.
type AdrenoInfo struct {
	Gpu AdrenoGpu
}

// NewAdrenoInfo resolves the device version string once; all queries on the
// result are pure reads.
func NewAdrenoInfo(deviceVersion string) AdrenoInfo {
	return AdrenoInfo{Gpu: ParseAdrenoGpu(deviceVersion)}
}

func (a AdrenoInfo) IsAdreno1xx() bool { return adrenoFamilies[a.Gpu] == 1 }
func (a AdrenoInfo) IsAdreno2xx() bool { return adrenoFamilies[a.Gpu] == 2 }
func (a AdrenoInfo) IsAdreno3xx() bool { return adrenoFamilies[a.Gpu] == 3 }
func (a AdrenoInfo) IsAdreno4xx() bool { return adrenoFamilies[a.Gpu] == 4 }
func (a AdrenoInfo) IsAdreno5xx() bool { return adrenoFamilies[a.Gpu] == 5 }
func (a AdrenoInfo) IsAdreno6xx() bool { return adrenoFamilies[a.Gpu] == 6 }

// No series above 6xx is modeled yet.
func (a AdrenoInfo) IsAdreno6xxOrHigher() bool { return a.IsAdreno6xx() }

// WaveSize is the SIMD execution width in threads. Adreno 6xx runs 128-wide
// full waves and 64-wide half waves, 4xx/5xx half of that. Older or unknown
// hardware reports 1 so callers never over-provision.
func (a AdrenoInfo) WaveSize(fullWave bool) int {
	switch {
	case a.IsAdreno6xx():
		if fullWave {
			return 128
		}
		return 64
	case a.IsAdreno5xx() || a.IsAdreno4xx():
		if fullWave {
			return 64
		}
		return 32
	}
	return 1
}

// RegisterMemorySizePerComputeUnit is the register file capacity of one
// compute unit in scalar registers, modeled for the 6xx series only.
func (a AdrenoInfo) RegisterMemorySizePerComputeUnit() int {
	if !a.IsAdreno6xx() {
		return 1
	}
	if n, ok := adrenoRegisterFileSizes[a.Gpu]; ok {
		return n
	}
	return adrenoDefaultRegisterFileSize
}

// MaximumWaveCount is the hardware wave slot limit of one compute unit.
func (a AdrenoInfo) MaximumWaveCount() int {
	if !a.IsAdreno6xx() {
		return 1
	}
	if n, ok := adrenoMaxWaves[a.Gpu]; ok {
		return n
	}
	return adrenoDefaultMaxWaves
}

// MaximumWaveCountForFootprint is the occupancy for a kernel holding
// registerFootprintPerThread registers live per thread: resident waves split
// the register file between them, capped by the hardware slot limit. A zero
// footprint leaves occupancy bounded by the slot limit alone.
func (a AdrenoInfo) MaximumWaveCountForFootprint(registerFootprintPerThread int, fullWave bool) int {
	perWave := a.WaveSize(fullWave) * registerFootprintPerThread
	if perWave <= 0 {
		return a.MaximumWaveCount()
	}
	return min(a.RegisterMemorySizePerComputeUnit()/perWave, a.MaximumWaveCount())
}
