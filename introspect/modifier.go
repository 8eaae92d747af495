package introspect

import "strings"

// Modifier is a set of Java access and property flags, using the same bit
// values as the class file format
type Modifier uint32

const (
	Public       Modifier = 0x0001
	Private      Modifier = 0x0002
	Protected    Modifier = 0x0004
	Static       Modifier = 0x0008
	Final        Modifier = 0x0010
	Synchronized Modifier = 0x0020
	Volatile     Modifier = 0x0040
	Transient    Modifier = 0x0080
	Native       Modifier = 0x0100
	Interface    Modifier = 0x0200
	Abstract     Modifier = 0x0400
	Strict       Modifier = 0x0800
)

var keywordModifiers = map[string]Modifier{
	"public":       Public,
	"private":      Private,
	"protected":    Protected,
	"static":       Static,
	"final":        Final,
	"synchronized": Synchronized,
	"volatile":     Volatile,
	"transient":    Transient,
	"native":       Native,
	"abstract":     Abstract,
	"strictfp":     Strict,
}

// ModifierOf maps a Java modifier keyword to its flag. Keywords that carry no
// flag, such as `default` or `sealed`, report false
func ModifierOf(keyword string) (Modifier, bool) {
	mod, ok := keywordModifiers[keyword]
	return mod, ok
}

func (m Modifier) Has(flag Modifier) bool {
	return m&flag != 0
}

func (m Modifier) IsPublic() bool    { return m.Has(Public) }
func (m Modifier) IsPrivate() bool   { return m.Has(Private) }
func (m Modifier) IsProtected() bool { return m.Has(Protected) }
func (m Modifier) IsStatic() bool    { return m.Has(Static) }
func (m Modifier) IsFinal() bool     { return m.Has(Final) }
func (m Modifier) IsAbstract() bool  { return m.Has(Abstract) }
func (m Modifier) IsTransient() bool { return m.Has(Transient) }
func (m Modifier) IsInterface() bool { return m.Has(Interface) }

// String lists the modifier keywords in canonical Java order, separated by
// spaces. The interface flag is rendered as `interface`
func (m Modifier) String() string {
	order := []struct {
		flag    Modifier
		keyword string
	}{
		{Public, "public"},
		{Protected, "protected"},
		{Private, "private"},
		{Abstract, "abstract"},
		{Static, "static"},
		{Final, "final"},
		{Transient, "transient"},
		{Volatile, "volatile"},
		{Synchronized, "synchronized"},
		{Native, "native"},
		{Strict, "strictfp"},
		{Interface, "interface"},
	}
	var keywords []string
	for _, entry := range order {
		if m.Has(entry.flag) {
			keywords = append(keywords, entry.keyword)
		}
	}
	return strings.Join(keywords, " ")
}
