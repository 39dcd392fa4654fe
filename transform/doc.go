// Package transform provides struct transformation utilities for mutating
// string fields recursively within structs. These utilities are commonly
// used inside [friendlyerrors.Normalizer] implementations to clean request
// payloads before validation.
package transform
