package keywordtest

import "strconv"

type Public int32

const (
	PublicNONE Public = 0
)

var EnumNamesPublic = map[Public]string{
	PublicNONE: "NONE",
}

var EnumValuesPublic = map[string]Public{
	"NONE": PublicNONE,
}

func (v Public) String() string {
	if s, ok := EnumNamesPublic[v]; ok {
		return s
	}
	return "Public(" + strconv.FormatInt(int64(v), 10) + ")"
}
