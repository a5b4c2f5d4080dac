package identity

const (
	opGetSupportedCountries      = "GetSupportedCountries"
	opVerifyIdentity             = "VerifyIdentity"
	opCheckIdentityVerification  = "CheckIdentityVerification"
	identityPayloadFieldSelector = `owner verified verifiedAtEpochMs verificationMethod canAttemptVerificationAgain idScanUrl`
)

const getSupportedCountriesQuery = `query GetSupportedCountries {
  getSupportedCountries {
    countryList
  }
}`

const verifyIdentityMutation = `mutation VerifyIdentity($input: VerifyIdentityInput!) {
  verifyIdentity(input: $input) {
    ` + identityPayloadFieldSelector + `
  }
}`

const checkIdentityVerificationQuery = `query CheckIdentityVerification {
  checkIdentityVerification {
    ` + identityPayloadFieldSelector + `
  }
}`
