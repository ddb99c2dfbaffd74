package session

// Navigator moves the host application to a location.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

var noopNavigator = NavigatorFunc(func(string) {})
