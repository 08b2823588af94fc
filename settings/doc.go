// Package settings houses the Settings namespace: user-preference actions
// exposed to the front-end over the channels "Settings:getUser" and
// "Settings:updateUser". The Store interface decouples the namespace from any
// concrete persistence; only the wiring layer decides which backend to
// instantiate, and an in-memory implementation ships for tests and
// development.
package settings
