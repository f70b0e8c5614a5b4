package lifelist

import (
	"reflect"
	"testing"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "plain", line: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "empty line", line: "", want: []string{""}},
		{name: "trailing comma", line: "a,", want: []string{"a", ""}},
		{name: "leading comma", line: ",a", want: []string{"", "a"}},
		{name: "quoted comma", line: `1,"Bubo, Virginianus",x`, want: []string{"1", "Bubo, Virginianus", "x"}},
		{name: "escaped quote", line: `"Say""s Phoebe",2`, want: []string{`Say"s Phoebe`, "2"}},
		{name: "empty quoted field", line: `"",a`, want: []string{"", "a"}},
		{name: "unterminated quote", line: `a,"b,c`, want: []string{"a", "b,c"}},
		{name: "mid-field quote toggles", line: `ab"c,d"e,f`, want: []string{"abc,de", "f"}},
		{name: "whitespace kept", line: " a , b ", want: []string{" a ", " b "}},
		{name: "utf8", line: `Troglodytes aedon,"Chochín, Común"`, want: []string{"Troglodytes aedon", "Chochín, Común"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
