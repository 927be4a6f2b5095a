// Package web serves the emergency-help site: donor search, first-aid guides,
// service directories, accounts and the SOS button.
//
// Every visitor owns an in-memory shell holding their session, language,
// navigation state and SOS indicator. Requests lease the shell for their
// whole duration, the route guard runs before any feature module, and shell
// changes are pushed to open tabs over a websocket.
package web
