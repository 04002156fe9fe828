package inspect

var csvLayout = Layout{
	Middle: " , ",
	End:    " , ",
}

// AsCSV renders values on a single line, every name, value and nested
// element separated by " , ".
func AsCSV(names string, values ...any) string {
	return csvLayout.Render(names, values...)
}
