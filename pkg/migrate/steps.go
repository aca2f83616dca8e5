package migrate

// TransformStep is one named, independently idempotent text rewrite. Apply
// returns the updated content and whether anything changed; running a step
// on its own output must return changed=false.
type TransformStep struct {
	Name  string
	Apply func(content string) (updated string, changed bool)
}

// runSteps applies steps in order, each against the output of the previous
// one, and returns the final content, whether any step fired, and the names
// of the steps that did.
func runSteps(content string, steps []TransformStep) (string, bool, []string) {
	var fired []string
	current := content
	for _, step := range steps {
		updated, changed := step.Apply(current)
		if changed {
			fired = append(fired, step.Name)
			current = updated
		}
	}
	return current, len(fired) > 0, fired
}
