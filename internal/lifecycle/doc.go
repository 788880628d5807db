// Package lifecycle configures the automatic patch-download behavior of a
// vCenter appliance through its update-policy REST resource.
//
// It covers the settings found in vCenter under
// Menu > Lifecycle Manager > Settings > Downloads:
//
//   - Automatic check/download of patches and updates
//   - Check schedule (how often vCenter looks for new patches)
//   - Download source (direct internet or a local UMDS depot)
//   - Proxy configuration for patch downloads
//
// All settings values are transient: they are built per call, serialized
// into one outbound request, and never cached. The remote policy document
// is the only source of truth.
package lifecycle
