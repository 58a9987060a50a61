package scenario

var registry = map[string]Handler{
	"set_lever":                  &SetLeverHandler{},
	"reset_levers":               &ResetLeversHandler{},
	"set_baseline_cell":          &SetBaselineCellHandler{},
	"set_progression_multiplier": &SetProgressionMultiplierHandler{},
}

func Get(name string) (Handler, bool) {
	h, ok := registry[name]
	return h, ok
}
