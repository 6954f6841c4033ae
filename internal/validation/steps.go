package validation

// Step validates only the fields belonging to the current wizard step and
// returns a map of field name to error message for the fields that failed.
// A step is satisfied iff the returned map is empty. The input maps are
// never mutated; calling Step twice with the same input yields equal results.
func Step(fields []string, values map[string]string) map[string]string {
	errs := make(map[string]string)
	for _, name := range fields {
		if msg := Field(name, values[name], values); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}
