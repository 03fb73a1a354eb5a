// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package prayer

import "strings"

// normalizeName folds case and drops separators so that "MuslimWorldLeague",
// "muslim_world_league" and "muslim-world-league" compare equal.
func normalizeName(s string) string {
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}
