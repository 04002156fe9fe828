package inspect

var listLayout = Layout{
	Indent: "\t",
	Middle: " = ",
	End:    "\n",
}

// AsList renders values as an indented list: one line per leaf, nested
// elements one tab deeper than their parent.
//
//	inspect.AsList("a, b", true, 101) // "a = true\nb = 101\n"
func AsList(names string, values ...any) string {
	return listLayout.Render(names, values...)
}
