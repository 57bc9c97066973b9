package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_box_mock.go -package=mock

// SecretBox запечатывает небольшие значения (сессию пользователя) перед
// записью на диск. Ключ выводится из парольной фразы через Argon2id с
// отдельной солью на каждый блоб, поэтому два Seal одного значения дают
// разные байты.
//
// Формат блоба: salt (16) ‖ nonce (24) ‖ ciphertext.
type SecretBox interface {
	// Seal serializes v to JSON and encrypts it.
	Seal(v any) ([]byte, error)

	// Open decrypts a blob produced by Seal and unmarshals it into target.
	// A wrong passphrase or a corrupted blob yields [ErrOpenFailed].
	Open(blob []byte, target any) error
}
