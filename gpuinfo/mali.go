package gpuinfo

import "strings"

// MaliGPU is a specific ARM Mali model.
type MaliGPU int

const (
	MaliUnknown MaliGPU = iota
	MaliT604
	MaliT622
	MaliT624
	MaliT628
	MaliT658
	MaliT678
	MaliT720
	MaliT760
	MaliT820
	MaliT830
	MaliT860
	MaliT880
	MaliG31
	MaliG51
	MaliG71
	MaliG52
	MaliG72
	MaliG76
	MaliG57
	MaliG77
	MaliG68
	MaliG78
)

// maliArch groups models by microarchitecture generation. New models are a
// table entry in maliArchs, not new predicate logic.
type maliArch int

const (
	archUnknown maliArch = iota
	archMidgardT6xx
	archMidgardT7xx
	archMidgardT8xx
	archBifrostGen1
	archBifrostGen2
	archBifrostGen3
	archValhall
)

// maliModels maps model-name substrings of the device name ("Mali-G78") to
// models. Keys must be unique, enforced at init.
var maliModels = []struct {
	key  string
	gpu  MaliGPU
	arch maliArch
}{
	{"T604", MaliT604, archMidgardT6xx},
	{"T622", MaliT622, archMidgardT6xx},
	{"T624", MaliT624, archMidgardT6xx},
	{"T628", MaliT628, archMidgardT6xx},
	{"T658", MaliT658, archMidgardT6xx},
	{"T678", MaliT678, archMidgardT6xx},
	{"T720", MaliT720, archMidgardT7xx},
	{"T760", MaliT760, archMidgardT7xx},
	{"T820", MaliT820, archMidgardT8xx},
	{"T830", MaliT830, archMidgardT8xx},
	{"T860", MaliT860, archMidgardT8xx},
	{"T880", MaliT880, archMidgardT8xx},
	{"G31", MaliG31, archBifrostGen1},
	{"G51", MaliG51, archBifrostGen1},
	{"G71", MaliG71, archBifrostGen1},
	{"G52", MaliG52, archBifrostGen2},
	{"G72", MaliG72, archBifrostGen2},
	{"G76", MaliG76, archBifrostGen3},
	{"G57", MaliG57, archValhall},
	{"G77", MaliG77, archValhall},
	{"G68", MaliG68, archValhall},
	{"G78", MaliG78, archValhall},
}

var (
	maliNames = map[MaliGPU]string{}
	maliArchs = map[MaliGPU]maliArch{}
)

func init() {
	seen := map[string]bool{}
	for _, m := range maliModels {
		if seen[m.key] {
			panic("gpuinfo: duplicate mali model key " + m.key)
		}
		seen[m.key] = true
		maliNames[m.gpu] = "Mali-" + m.key
		maliArchs[m.gpu] = m.arch
	}
}

func (g MaliGPU) String() string {
	if name, ok := maliNames[g]; ok {
		return name
	}
	return "unknown"
}

// ParseMaliGpu resolves a device name string such as "Mali-G78" to a model.
// Unmatched input yields MaliUnknown.
func ParseMaliGpu(deviceName string) MaliGPU {
	for _, m := range maliModels {
		if strings.Contains(deviceName, m.key) {
			return m.gpu
		}
	}
	return MaliUnknown
}

// MaliInfo answers microarchitecture questions about one resolved Mali
// model. The zero value reports MaliUnknown.
type MaliInfo struct {
	Gpu MaliGPU
}

func NewMaliInfo(deviceName string) MaliInfo {
	return MaliInfo{Gpu: ParseMaliGpu(deviceName)}
}

func (m MaliInfo) IsMaliT6xx() bool { return maliArchs[m.Gpu] == archMidgardT6xx }
func (m MaliInfo) IsMaliT7xx() bool { return maliArchs[m.Gpu] == archMidgardT7xx }
func (m MaliInfo) IsMaliT8xx() bool { return maliArchs[m.Gpu] == archMidgardT8xx }

func (m MaliInfo) IsMidgard() bool {
	return m.IsMaliT6xx() || m.IsMaliT7xx() || m.IsMaliT8xx()
}

func (m MaliInfo) IsBifrostGen1() bool { return maliArchs[m.Gpu] == archBifrostGen1 }
func (m MaliInfo) IsBifrostGen2() bool { return maliArchs[m.Gpu] == archBifrostGen2 }
func (m MaliInfo) IsBifrostGen3() bool { return maliArchs[m.Gpu] == archBifrostGen3 }

func (m MaliInfo) IsBifrost() bool {
	return m.IsBifrostGen1() || m.IsBifrostGen2() || m.IsBifrostGen3()
}

func (m MaliInfo) IsValhall() bool { return maliArchs[m.Gpu] == archValhall }
