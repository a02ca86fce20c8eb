package libdiff

// markers delimiting changes in uncolored output.
const (
	DeleteOpen  = "[-"
	DeleteClose = "-]"
	InsertOpen  = "{+"
	InsertClose = "+}"
)
