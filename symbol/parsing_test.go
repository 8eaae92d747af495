package symbol_test

import (
	"testing"

	"github.com/NickyBoy89/genresolve/parsing"
	"github.com/NickyBoy89/genresolve/symbol"
)

func parseSymbols(t *testing.T, name, src string) *symbol.FileScope {
	t.Helper()
	file := parsing.SourceFile{Name: name, Source: []byte(src)}
	symbols, err := file.Parse()
	if err != nil {
		t.Fatalf("failed to parse %s: %v", name, err)
	}
	return symbols
}

func TestParseSymbols_EnumConstantsAndImplicitMembers(t *testing.T) {
	src := `
package enums.symbols;
interface Flag { boolean isOn(); }
public enum Switch implements Flag {
    ON { public boolean isOn() { return true; } },
    OFF;
    public boolean isOn() { return false; }
}
`
	symbols := parseSymbols(t, "Switch.java", src)
	base := symbols.FindClassScope("Switch")
	if base == nil {
		t.Fatalf("expected enum class scope to be populated")
	}

	if base.BinaryName != "enums.symbols.Switch" {
		t.Fatalf("expected binary name enums.symbols.Switch, got %s", base.BinaryName)
	}
	if got := len(base.Interfaces); got != 1 || base.Interfaces[0].String() != "Flag" {
		t.Fatalf("expected implemented interfaces to include Flag, got: %#v", base.Interfaces)
	}
	if base.Superclass.String() != "java.lang.Enum<enums.symbols.Switch>" {
		t.Fatalf("expected implicit Enum superclass, got %s", base.Superclass)
	}

	if got := len(base.EnumConstants); got != 2 {
		t.Fatalf("expected two enum constants, got %d", got)
	}
	if base.FindFieldByName("ON") == nil || !base.FindFieldByName("ON").IsStatic() {
		t.Fatalf("expected enum constants to be declared as static fields")
	}
	if values := base.FindFieldByName("$VALUES"); values == nil || !values.Synthetic {
		t.Fatalf("expected a synthetic $VALUES field")
	}

	for _, required := range []string{"values", "valueOf", "isOn"} {
		if len(base.FindMethod().ByName(required)) == 0 {
			t.Fatalf("expected method %s to be registered on enum", required)
		}
	}

	// ON has a body, so it is an anonymous subclass and the enum is not final
	if len(base.LocalClasses) != 1 || !base.LocalClasses[0].Anonymous {
		t.Fatalf("expected one anonymous constant body, got %d local classes", len(base.LocalClasses))
	}
	if base.LocalClasses[0].BinaryName != "enums.symbols.Switch$1" {
		t.Fatalf("unexpected anonymous binary name %s", base.LocalClasses[0].BinaryName)
	}
	if base.Class.Modifiers.IsFinal() {
		t.Fatalf("did not expect an enum with constant bodies to be final")
	}

	constructors := base.FindConstructor().By(func(d *symbol.Definition) bool { return true })
	if len(constructors) != 1 || !constructors[0].Modifiers.IsPrivate() {
		t.Fatalf("expected a single private default constructor, got %#v", constructors)
	}
}

func TestParseSymbols_InterfaceImplicitModifiers(t *testing.T) {
	src := `
package shapes;
public interface Shape<T extends Number> {
    int SIDES = 0;
    T area();
    default String name() { return "shape"; }
    static Shape<Integer> unit() { return null; }
    class Helper {}
}
`
	shape := parseSymbols(t, "Shape.java", src).FindClassScope("Shape")

	sides := shape.FindFieldByName("SIDES")
	if sides.Modifiers.String() != "public static final" {
		t.Errorf("Expected interface constant to be public static final, got %q", sides.Modifiers)
	}

	area := shape.FindMethodByName("area", nil)
	if area.Modifiers.String() != "public abstract" {
		t.Errorf("Expected abstract interface method, got %q", area.Modifiers)
	}

	name := shape.FindMethodByName("name", nil)
	if !name.Default || name.Modifiers.IsAbstract() {
		t.Errorf("Expected default method to be non-abstract, got %q", name.Modifiers)
	}

	unit := shape.FindMethodByName("unit", nil)
	if unit.Modifiers.String() != "public static" {
		t.Errorf("Expected static interface method, got %q", unit.Modifiers)
	}

	helper := shape.MemberClass("Helper")
	if helper == nil || !helper.IsStatic() || !helper.Class.Modifiers.IsPublic() {
		t.Errorf("Expected member class of an interface to be public static")
	}
	if len(shape.Constructors) != 0 {
		t.Errorf("Expected interfaces to declare no constructors")
	}

	if len(shape.TypeParameters) != 1 || shape.TypeParameters[0].Bounds[0].String() != "Number" {
		t.Errorf("Expected type parameter T extends Number, got %#v", shape.TypeParameters)
	}
}

func TestParseSymbols_InnerClassesAndTypeParameterVisibility(t *testing.T) {
	src := `
package nest;
public class Outer<T> {
    class Inner<U> { T left; U right; }
    static class Nested<V> { V value; }
    <M> void run(M m) {
        class Local { M held; }
        Runnable r = () -> {};
    }
}
`
	outer := parseSymbols(t, "Outer.java", src).FindClassScope("Outer")

	inner := outer.MemberClass("Inner")
	if inner.BinaryName != "nest.Outer$Inner" {
		t.Fatalf("unexpected binary name %s", inner.BinaryName)
	}
	if got := symbol.TypeParamNames(inner.VisibleTypeParameters()); len(got) != 2 || got[0] != "T" || got[1] != "U" {
		t.Errorf("Expected inner class to see T and U, got %v", got)
	}
	if field := inner.FindFieldByName("this$0"); field == nil || !field.Synthetic {
		t.Errorf("Expected inner class to hold a synthetic outer reference")
	}

	nested := outer.MemberClass("Nested")
	if got := symbol.TypeParamNames(nested.VisibleTypeParameters()); len(got) != 1 || got[0] != "V" {
		t.Errorf("Expected static nested class to only see V, got %v", got)
	}
	if nested.FindFieldByName("this$0") != nil {
		t.Errorf("Did not expect a static nested class to reference its outer instance")
	}

	if len(outer.LocalClasses) != 1 {
		t.Fatalf("Expected one local class, got %d", len(outer.LocalClasses))
	}
	local := outer.LocalClasses[0]
	if !local.Local || local.BinaryName != "nest.Outer$1Local" {
		t.Errorf("Unexpected local class %s", local.BinaryName)
	}
	if got := symbol.TypeParamNames(local.VisibleTypeParameters()); len(got) != 2 || got[0] != "T" || got[1] != "M" {
		t.Errorf("Expected local class to see T and M, got %v", got)
	}

	lambdas := outer.FindMethod().By(func(d *symbol.Definition) bool { return d.Synthetic })
	if len(lambdas) != 1 || lambdas[0].Name != "lambda$run$0" {
		t.Errorf("Expected one synthetic lambda method, got %#v", lambdas)
	}
}

func TestParseSymbols_FieldsAndParameters(t *testing.T) {
	src := `
import java.util.List;
import java.util.*;
class Holder {
    private int a, b[];
    protected transient List<String> names;
    Holder(final int x, String... rest) {}
    void take(int[] values, List<? extends Number> numbers) {}
}
`
	symbols := parseSymbols(t, "Holder.java", src)
	if symbols.Imports["List"] != "java.util.List" {
		t.Errorf("Expected single-type import of List, got %v", symbols.Imports)
	}
	if len(symbols.WildcardImports) != 1 || symbols.WildcardImports[0] != "java.util" {
		t.Errorf("Expected on-demand import of java.util, got %v", symbols.WildcardImports)
	}

	holder := symbols.FindClassScope("Holder")
	if holder.BinaryName != "Holder" {
		t.Errorf("Expected default package binary name, got %s", holder.BinaryName)
	}

	tests := []struct {
		field    string
		wantType string
	}{
		{"a", "int"},
		{"b", "int[]"},
		{"names", "List<String>"},
	}
	for _, tt := range tests {
		field := holder.FindFieldByName(tt.field)
		if field == nil {
			t.Fatalf("Expected field %s", tt.field)
		}
		if field.Type.String() != tt.wantType {
			t.Errorf("Field %s: expected %s, got %s", tt.field, tt.wantType, field.Type)
		}
	}
	if !holder.FindFieldByName("names").Modifiers.IsTransient() {
		t.Errorf("Expected names to be transient")
	}

	constructor := holder.Constructors[0]
	if got := constructor.ParameterTypes(); len(got) != 2 || got[0] != "int" || got[1] != "String[]" {
		t.Errorf("Unexpected constructor parameters %v", got)
	}
	if !constructor.Parameters[1].VarArgs || constructor.Parameters[1].Name != "rest" {
		t.Errorf("Expected trailing varargs parameter named rest")
	}
	if !constructor.Parameters[0].Modifiers.IsFinal() {
		t.Errorf("Expected final parameter modifier to be kept")
	}

	take := holder.FindMethodByName("take", []string{"int[]", "List<? extends Number>"})
	if take == nil {
		t.Fatalf("Expected to find take by parameter types")
	}
	if take.ParameterByName("numbers") == nil {
		t.Errorf("Expected parameter lookup by name")
	}
}

func TestParseSymbols_Records(t *testing.T) {
	src := `
package rec;
public record Point<N extends Number>(N x, N y) {
    public N x() { return x; }
}
`
	point := parseSymbols(t, "Point.java", src).FindClassScope("Point")

	if len(point.RecordComponents) != 2 {
		t.Fatalf("Expected two record components, got %d", len(point.RecordComponents))
	}
	if field := point.FindFieldByName("y"); field == nil || field.Modifiers.String() != "private final" {
		t.Errorf("Expected components to become private final fields")
	}
	if got := len(point.FindMethod().ByName("x")); got != 1 {
		t.Errorf("Expected the declared accessor to replace the implicit one, got %d", got)
	}
	if got := len(point.FindMethod().ByName("y")); got != 1 {
		t.Errorf("Expected an implicit accessor for y, got %d", got)
	}
	if len(point.Constructors) != 1 || len(point.Constructors[0].Parameters) != 2 {
		t.Errorf("Expected a canonical constructor with two parameters")
	}
	if !point.Class.Modifiers.IsFinal() {
		t.Errorf("Expected records to be final")
	}
}

func TestParseSymbols_AnonymousClasses(t *testing.T) {
	src := `
class Tasks {
    static Runnable task = new Runnable() {
        public void run() {}
    };
    Object make() {
        return new Object() {};
    }
}
`
	tasks := parseSymbols(t, "Tasks.java", src).FindClassScope("Tasks")
	if len(tasks.LocalClasses) != 2 {
		t.Fatalf("Expected two anonymous classes, got %d", len(tasks.LocalClasses))
	}

	first := tasks.LocalClasses[0]
	if first.BinaryName != "Tasks$1" || first.Superclass.String() != "Runnable" {
		t.Errorf("Unexpected first anonymous class %s extends %s", first.BinaryName, first.Superclass)
	}
	if first.FindFieldByName("this$0") != nil {
		t.Errorf("Did not expect an anonymous class in a static initializer to capture this")
	}

	second := tasks.LocalClasses[1]
	if second.BinaryName != "Tasks$2" {
		t.Errorf("Unexpected second anonymous class %s", second.BinaryName)
	}
	if second.FindFieldByName("this$0") == nil {
		t.Errorf("Expected an anonymous class in an instance method to capture this")
	}
}

func TestParse_SyntaxError(t *testing.T) {
	file := parsing.SourceFile{Name: "Broken.java", Source: []byte("class Broken { int }")}
	if _, err := file.Parse(); err == nil {
		t.Fatalf("Expected a syntax error")
	}
}
