package ecs

// Query returns the entities present in every given store.
//
// Candidates come from the smallest store in its dense order, so results are
// deterministic for a given sequence of Add and Remove calls.
func Query(stores ...AnyStore) []Entity {
	if len(stores) == 0 {
		return nil
	}

	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.count() < smallest.count() {
			smallest = s
		}
	}

	candidates := smallest.entityList()
	result := make([]Entity, 0, len(candidates))
	for _, e := range candidates {
		matched := true
		for _, s := range stores {
			if s != smallest && !s.has(e) {
				matched = false
				break
			}
		}
		if matched {
			result = append(result, e)
		}
	}
	return result
}
