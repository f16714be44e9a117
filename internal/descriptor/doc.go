// Package descriptor defines the App Descriptor document: the JSON record
// that tells a reverse proxy supervisor how to launch an application and
// which local address to forward its traffic to.
package descriptor
