package config_test

import (
	"os"
	"testing"

	"github.com/saulo-duarte/neurobloom-api/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	t.Run("ShortKeyPanics", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", "chave_curta")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("InitCrypto deveria ter entrado em pânico com chave curta, mas não entrou.")
			}
		}()

		config.InitCrypto()
	})

	t.Run("ValidKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", testKey)

		config.InitCrypto()
	})
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("SessionID", func(t *testing.T) {
		plaintext := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt falhou com erro: %v", err)
		}

		decryptedtext, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt falhou com erro: %v", err)
		}

		if decryptedtext != plaintext {
			t.Errorf("O texto descriptografado ('%s') não corresponde ao original ('%s')",
				decryptedtext, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("A criptografia não está sendo aleatória (nonce/IV). As cifras deveriam ser diferentes.")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		plaintext := ""
		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt falhou com erro: %v", err)
		}
		decryptedtext, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt falhou com erro: %v", err)
		}
		if decryptedtext != plaintext {
			t.Errorf("O texto descriptografado vazio está incorreto: '%s'", decryptedtext)
		}
	})

	t.Run("TamperedCookie", func(t *testing.T) {
		if _, err := config.Decrypt("bm90LXVtLWNvb2tpZS12YWxpZG8"); err == nil {
			t.Error("Decrypt deveria ter falhado com um valor adulterado, mas passou.")
		}
	})
}
