package log

type Action = string

const (
	List      Action = "List"
	Get              = "Get"
	Search           = "Search"
	Add              = "Add"
	Update           = "Update"
	Delete           = "Delete"
	Count            = "Count"
	Help             = "Help"
	Exit             = "Exit"
	Connect          = "Connect"
	Disconnect       = "Disconnect"
	Dispatch         = "Dispatch"
	Notify           = "Notify"
)
