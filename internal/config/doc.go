// Package config manages the launcher's own settings file under ~/.mlaunch/.
// Launch behavior never depends on it; only ambient concerns (update mirror,
// banner suppression) live here.
package config
