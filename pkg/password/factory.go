package password

import "fmt"

// DefaultHasherFactory returns hashers for the supported password versions
type DefaultHasherFactory struct{}

// NewDefaultHasherFactory creates a new DefaultHasherFactory
func NewDefaultHasherFactory() *DefaultHasherFactory {
	return &DefaultHasherFactory{}
}

// GetHasher implements PasswordHasherFactory.GetHasher
func (f *DefaultHasherFactory) GetHasher(version PasswordVersion) (PasswordHasher, error) {
	switch version {
	case PasswordV1:
		return &BcryptV1Hasher{}, nil
	case PasswordV2:
		return &BcryptV2Hasher{}, nil
	default:
		return nil, fmt.Errorf("unsupported password version: %d", version)
	}
}
