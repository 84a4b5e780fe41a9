// Package settings keeps ContainerDistributionFramework.ini in line with the
// settings the container manager expects.
//
// # Reconciliation
//
// Reconciler.Reconcile runs once while the host starts:
//
//  1. Create an empty file if none exists.
//  2. Load it. A file that cannot be parsed counts as empty.
//  3. Compare the [General] section against the schema (Schema.NeedsRebuild).
//  4. On a fresh or mismatched file, drop the section, write the defaults and
//     save the file.
//  5. Read fMaxRefLookupDistance, falling back to 25000 on any failure.
//  6. Clamp it to [0, 150000] and hand it to the RadiusSetter.
//
// A valid file is never rewritten, even when its value is out of range; only
// the published value is clamped.
package settings
