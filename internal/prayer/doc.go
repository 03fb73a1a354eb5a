// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

// Package prayer computes the five daily prayer times for a coordinate and civil date.
//
// All results are absolute instants in UTC. The computation is pure: it performs no I/O,
// keeps no state between calls and is safe for concurrent use. Days on which the sun does
// not rise, set or reach the twilight angles are resolved by the documented high-latitude
// rules (see HighLatitudeRule and AdjustedLatitude), so Compute never returns NaN or an
// undefined instant for valid input.
package prayer
