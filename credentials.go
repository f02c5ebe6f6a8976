package cfn

// Credentials selects how the CloudFormation client authenticates.
//
// The zero value means "use ambient credentials": the SDK's default
// chain (environment variables, shared config, IMDS). When AccessKey is
// set, a static access-key/secret-key provider is used instead. Region
// is optional; empty falls back to whatever the default chain resolves.
//
// Credentials is a comparable value type and is used as the cache key
// in [ClientPool]: two equal values always map to the same client.
type Credentials struct {
	AccessKey string
	SecretKey string
	Region    string
}

// Static reports whether explicit access keys were supplied.
func (c Credentials) Static() bool {
	return c.AccessKey != ""
}
