// Package form drives a registration form: it turns input, blur and submit
// events into formatting, validation, strength feedback and dispatch, and
// reports every visible change through a render.Presenter.
//
// A Controller owns one form. Input handlers may be called from any
// goroutine; Submit rejects overlapping calls with ErrSubmitInProgress.
package form
