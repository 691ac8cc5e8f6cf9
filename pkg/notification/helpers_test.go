package notification

type launch struct {
	name string
	args []string
}

// fakeLauncher records launches. testutil imports this package, so it
// can't be used from here.
type fakeLauncher struct {
	launches []launch
	err      error
}

func (f *fakeLauncher) Launch(name string, args ...string) error {
	f.launches = append(f.launches, launch{name: name, args: args})
	return f.err
}
