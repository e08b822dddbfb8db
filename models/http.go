package models

// ProvisionRequest is the body of POST /decrypt-seed. EncryptedSeed carries
// the RSA-OAEP ciphertext of the seed, base64-encoded (standard alphabet).
type ProvisionRequest struct {
	EncryptedSeed string `json:"encrypted_seed"`
}

// VerifyRequest is the body of POST /verify-2fa.
type VerifyRequest struct {
	// Code is the caller-submitted candidate TOTP code.
	Code string `json:"code"`
}
