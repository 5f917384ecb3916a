package access

const DefaultAdminRole = "admin"

type options struct {
	adminRole string
	onFailure FailurePolicy
}

type Option func(*options)

// WithAdminRole sets the profile name an account needs to pass Authenticate.
func WithAdminRole(name string) Option {
	return func(o *options) {
		if name != "" {
			o.adminRole = name
		}
	}
}

func WithFailurePolicy(policy FailurePolicy) Option {
	return func(o *options) {
		o.onFailure = policy
	}
}

func buildOptions(opts []Option) options {
	o := options{adminRole: DefaultAdminRole}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) fail(op string, err error) error {
	storageErr := &StorageError{Op: op, Err: err}
	if o.onFailure != nil {
		o.onFailure(op, storageErr)
	}
	return storageErr
}
