// Package config loads unbrew's settings.
//
// Sources are layered with koanf, later ones winning:
//
//  1. embedded/defaults.toml
//  2. the first of unbrew/config.toml, unbrew/config.yaml or
//     unbrew/config.yml found in the XDG config directories
//  3. UNBREW_* environment variables, "__" separating levels
//  4. overrides passed in Options
//
// Nothing here is consulted by the orphan and removal logic itself; the
// command layer turns a Config into a brew client and output settings.
package config
