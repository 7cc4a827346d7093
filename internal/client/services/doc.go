// Package services contains application services for the instabids CLI that
// sit beside the session store: media uploads and account housekeeping.
package services
