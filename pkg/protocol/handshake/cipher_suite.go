// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// CipherSuiteID is an ID for a cipher suite as registered with IANA.
// IDs missing from the table below are carried verbatim.
//
// https://www.iana.org/assignments/tls-parameters/tls-parameters.xhtml#tls-parameters-4
type CipherSuiteID uint16

// Cipher suites with a registered name.
const (
	// Null and RSA
	TLS_NULL_WITH_NULL_NULL            CipherSuiteID = 0x0000 //nolint:revive,stylecheck
	TLS_RSA_WITH_NULL_MD5              CipherSuiteID = 0x0001 //nolint:revive,stylecheck
	TLS_RSA_WITH_NULL_SHA              CipherSuiteID = 0x0002 //nolint:revive,stylecheck
	TLS_RSA_EXPORT_WITH_RC4_40_MD5     CipherSuiteID = 0x0003 //nolint:revive,stylecheck
	TLS_RSA_WITH_RC4_128_MD5           CipherSuiteID = 0x0004 //nolint:revive,stylecheck
	TLS_RSA_WITH_RC4_128_SHA           CipherSuiteID = 0x0005 //nolint:revive,stylecheck
	TLS_RSA_EXPORT_WITH_RC2_CBC_40_MD5 CipherSuiteID = 0x0006 //nolint:revive,stylecheck
	TLS_RSA_WITH_IDEA_CBC_SHA          CipherSuiteID = 0x0007 //nolint:revive,stylecheck
	TLS_RSA_EXPORT_WITH_DES40_CBC_SHA  CipherSuiteID = 0x0008 //nolint:revive,stylecheck
	TLS_RSA_WITH_DES_CBC_SHA           CipherSuiteID = 0x0009 //nolint:revive,stylecheck
	TLS_RSA_WITH_3DES_EDE_CBC_SHA      CipherSuiteID = 0x000a //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_128_CBC_SHA       CipherSuiteID = 0x002f //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_256_CBC_SHA       CipherSuiteID = 0x0035 //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_128_CBC_SHA256    CipherSuiteID = 0x003c //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_256_CBC_SHA256    CipherSuiteID = 0x003d //nolint:revive,stylecheck
	TLS_RSA_EXPORT1024_WITH_RC4_56_SHA CipherSuiteID = 0x0064 //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_128_GCM_SHA256    CipherSuiteID = 0x009c //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_256_GCM_SHA384    CipherSuiteID = 0x009d //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_128_CCM           CipherSuiteID = 0xc09c //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_256_CCM           CipherSuiteID = 0xc09d //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_128_CCM_8         CipherSuiteID = 0xc0a0 //nolint:revive,stylecheck
	TLS_RSA_WITH_AES_256_CCM_8         CipherSuiteID = 0xc0a1 //nolint:revive,stylecheck

	// Diffie-Hellman
	TLS_DH_DSS_EXPORT_WITH_DES40_CBC_SHA  CipherSuiteID = 0x000b //nolint:revive,stylecheck
	TLS_DH_DSS_WITH_DES_CBC_SHA           CipherSuiteID = 0x000c //nolint:revive,stylecheck
	TLS_DH_DSS_WITH_3DES_EDE_CBC_SHA      CipherSuiteID = 0x000d //nolint:revive,stylecheck
	TLS_DH_RSA_EXPORT_WITH_DES40_CBC_SHA  CipherSuiteID = 0x000e //nolint:revive,stylecheck
	TLS_DH_RSA_WITH_DES_CBC_SHA           CipherSuiteID = 0x000f //nolint:revive,stylecheck
	TLS_DH_RSA_WITH_3DES_EDE_CBC_SHA      CipherSuiteID = 0x0010 //nolint:revive,stylecheck
	TLS_DHE_DSS_EXPORT_WITH_DES40_CBC_SHA CipherSuiteID = 0x0011 //nolint:revive,stylecheck
	TLS_DHE_DSS_WITH_DES_CBC_SHA          CipherSuiteID = 0x0012 //nolint:revive,stylecheck
	TLS_DHE_DSS_WITH_3DES_EDE_CBC_SHA     CipherSuiteID = 0x0013 //nolint:revive,stylecheck
	TLS_DHE_RSA_EXPORT_WITH_DES40_CBC_SHA CipherSuiteID = 0x0014 //nolint:revive,stylecheck
	TLS_DHE_RSA_WITH_DES_CBC_SHA          CipherSuiteID = 0x0015 //nolint:revive,stylecheck
	TLS_DHE_RSA_WITH_3DES_EDE_CBC_SHA     CipherSuiteID = 0x0016 //nolint:revive,stylecheck
	TLS_DH_anon_EXPORT_WITH_RC4_40_MD5    CipherSuiteID = 0x0017 //nolint:revive,stylecheck
	TLS_DH_anon_WITH_RC4_128_MD5          CipherSuiteID = 0x0018 //nolint:revive,stylecheck
	TLS_DH_anon_EXPORT_WITH_DES40_CBC_SHA CipherSuiteID = 0x0019 //nolint:revive,stylecheck
	TLS_DH_anon_WITH_DES_CBC_SHA          CipherSuiteID = 0x001a //nolint:revive,stylecheck
	TLS_DH_anon_WITH_3DES_EDE_CBC_SHA     CipherSuiteID = 0x001b //nolint:revive,stylecheck
	TLS_DHE_RSA_WITH_AES_128_CBC_SHA      CipherSuiteID = 0x0033 //nolint:revive,stylecheck
	TLS_DHE_RSA_WITH_AES_256_CBC_SHA      CipherSuiteID = 0x0039 //nolint:revive,stylecheck
	TLS_DHE_RSA_WITH_AES_128_CBC_SHA256   CipherSuiteID = 0x0067 //nolint:revive,stylecheck
	TLS_DHE_RSA_WITH_AES_256_CBC_SHA256   CipherSuiteID = 0x006b //nolint:revive,stylecheck
	TLS_DHE_RSA_WITH_AES_128_GCM_SHA256   CipherSuiteID = 0x009e //nolint:revive,stylecheck
	TLS_DHE_RSA_WITH_AES_256_GCM_SHA384   CipherSuiteID = 0x009f //nolint:revive,stylecheck

	// Kerberos
	TLS_KRB5_WITH_DES_CBC_SHA           CipherSuiteID = 0x001e //nolint:revive,stylecheck
	TLS_KRB5_WITH_3DES_EDE_CBC_SHA      CipherSuiteID = 0x001f //nolint:revive,stylecheck
	TLS_KRB5_WITH_RC4_128_SHA           CipherSuiteID = 0x0020 //nolint:revive,stylecheck
	TLS_KRB5_WITH_IDEA_CBC_SHA          CipherSuiteID = 0x0021 //nolint:revive,stylecheck
	TLS_KRB5_WITH_DES_CBC_MD5           CipherSuiteID = 0x0022 //nolint:revive,stylecheck
	TLS_KRB5_WITH_3DES_EDE_CBC_MD5      CipherSuiteID = 0x0023 //nolint:revive,stylecheck
	TLS_KRB5_WITH_RC4_128_MD5           CipherSuiteID = 0x0024 //nolint:revive,stylecheck
	TLS_KRB5_WITH_IDEA_CBC_MD5          CipherSuiteID = 0x0025 //nolint:revive,stylecheck
	TLS_KRB5_EXPORT_WITH_DES_CBC_40_SHA CipherSuiteID = 0x0026 //nolint:revive,stylecheck
	TLS_KRB5_EXPORT_WITH_RC2_CBC_40_SHA CipherSuiteID = 0x0027 //nolint:revive,stylecheck
	TLS_KRB5_EXPORT_WITH_RC4_40_SHA     CipherSuiteID = 0x0028 //nolint:revive,stylecheck
	TLS_KRB5_EXPORT_WITH_DES_CBC_40_MD5 CipherSuiteID = 0x0029 //nolint:revive,stylecheck
	TLS_KRB5_EXPORT_WITH_RC2_CBC_40_MD5 CipherSuiteID = 0x002a //nolint:revive,stylecheck
	TLS_KRB5_EXPORT_WITH_RC4_40_MD5     CipherSuiteID = 0x002b //nolint:revive,stylecheck

	// Pre-shared key
	TLS_PSK_WITH_NULL_SHA                       CipherSuiteID = 0x002c //nolint:revive,stylecheck
	TLS_PSK_WITH_RC4_128_SHA                    CipherSuiteID = 0x008a //nolint:revive,stylecheck
	TLS_PSK_WITH_3DES_EDE_CBC_SHA               CipherSuiteID = 0x008b //nolint:revive,stylecheck
	TLS_PSK_WITH_AES_128_CBC_SHA                CipherSuiteID = 0x008c //nolint:revive,stylecheck
	TLS_PSK_WITH_AES_256_CBC_SHA                CipherSuiteID = 0x008d //nolint:revive,stylecheck
	TLS_PSK_WITH_AES_128_GCM_SHA256             CipherSuiteID = 0x00a8 //nolint:revive,stylecheck
	TLS_PSK_WITH_AES_256_GCM_SHA384             CipherSuiteID = 0x00a9 //nolint:revive,stylecheck
	TLS_PSK_WITH_AES_128_CBC_SHA256             CipherSuiteID = 0x00ae //nolint:revive,stylecheck
	TLS_PSK_WITH_AES_128_CCM                    CipherSuiteID = 0xc0a4 //nolint:revive,stylecheck
	TLS_PSK_WITH_AES_128_CCM_8                  CipherSuiteID = 0xc0a8 //nolint:revive,stylecheck
	TLS_PSK_WITH_CHACHA20_POLY1305_SHA256       CipherSuiteID = 0xccab //nolint:revive,stylecheck
	TLS_ECDHE_PSK_WITH_RC4_128_SHA              CipherSuiteID = 0xc033 //nolint:revive,stylecheck
	TLS_ECDHE_PSK_WITH_AES_128_CBC_SHA          CipherSuiteID = 0xc035 //nolint:revive,stylecheck
	TLS_ECDHE_PSK_WITH_AES_256_CBC_SHA          CipherSuiteID = 0xc036 //nolint:revive,stylecheck
	TLS_ECDHE_PSK_WITH_AES_128_CBC_SHA256       CipherSuiteID = 0xc037 //nolint:revive,stylecheck
	TLS_ECDHE_PSK_WITH_CHACHA20_POLY1305_SHA256 CipherSuiteID = 0xccac //nolint:revive,stylecheck

	// Elliptic curve
	TLS_ECDH_ECDSA_WITH_NULL_SHA                  CipherSuiteID = 0xc001 //nolint:revive,stylecheck
	TLS_ECDH_ECDSA_WITH_RC4_128_SHA               CipherSuiteID = 0xc002 //nolint:revive,stylecheck
	TLS_ECDH_ECDSA_WITH_AES_128_CBC_SHA           CipherSuiteID = 0xc004 //nolint:revive,stylecheck
	TLS_ECDH_ECDSA_WITH_AES_256_CBC_SHA           CipherSuiteID = 0xc005 //nolint:revive,stylecheck
	TLS_ECDHE_ECDSA_WITH_NULL_SHA                 CipherSuiteID = 0xc006 //nolint:revive,stylecheck
	TLS_ECDHE_ECDSA_WITH_RC4_128_SHA              CipherSuiteID = 0xc007 //nolint:revive,stylecheck
	TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA          CipherSuiteID = 0xc009 //nolint:revive,stylecheck
	TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA          CipherSuiteID = 0xc00a //nolint:revive,stylecheck
	TLS_ECDH_RSA_WITH_NULL_SHA                    CipherSuiteID = 0xc00b //nolint:revive,stylecheck
	TLS_ECDH_RSA_WITH_RC4_128_SHA                 CipherSuiteID = 0xc00c //nolint:revive,stylecheck
	TLS_ECDH_RSA_WITH_AES_128_CBC_SHA             CipherSuiteID = 0xc00e //nolint:revive,stylecheck
	TLS_ECDH_RSA_WITH_AES_256_CBC_SHA             CipherSuiteID = 0xc00f //nolint:revive,stylecheck
	TLS_ECDHE_RSA_WITH_NULL_SHA                   CipherSuiteID = 0xc010 //nolint:revive,stylecheck
	TLS_ECDHE_RSA_WITH_RC4_128_SHA                CipherSuiteID = 0xc011 //nolint:revive,stylecheck
	TLS_ECDHE_RSA_WITH_3DES_EDE_CBC_SHA           CipherSuiteID = 0xc012 //nolint:revive,stylecheck
	TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA            CipherSuiteID = 0xc013 //nolint:revive,stylecheck
	TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA            CipherSuiteID = 0xc014 //nolint:revive,stylecheck
	TLS_ECDH_anon_WITH_AES_128_CBC_SHA            CipherSuiteID = 0xc018 //nolint:revive,stylecheck
	TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA256       CipherSuiteID = 0xc023 //nolint:revive,stylecheck
	TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA384       CipherSuiteID = 0xc024 //nolint:revive,stylecheck
	TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA256         CipherSuiteID = 0xc027 //nolint:revive,stylecheck
	TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA384         CipherSuiteID = 0xc028 //nolint:revive,stylecheck
	TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256       CipherSuiteID = 0xc02b //nolint:revive,stylecheck
	TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384       CipherSuiteID = 0xc02c //nolint:revive,stylecheck
	TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256         CipherSuiteID = 0xc02f //nolint:revive,stylecheck
	TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384         CipherSuiteID = 0xc030 //nolint:revive,stylecheck
	TLS_ECDHE_ECDSA_WITH_AES_128_CCM              CipherSuiteID = 0xc0ac //nolint:revive,stylecheck
	TLS_ECDHE_ECDSA_WITH_AES_256_CCM              CipherSuiteID = 0xc0ad //nolint:revive,stylecheck
	TLS_ECDHE_ECDSA_WITH_AES_128_CCM_8            CipherSuiteID = 0xc0ae //nolint:revive,stylecheck
	TLS_ECDHE_ECDSA_WITH_AES_256_CCM_8            CipherSuiteID = 0xc0af //nolint:revive,stylecheck
	TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256   CipherSuiteID = 0xcca8 //nolint:revive,stylecheck
	TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256 CipherSuiteID = 0xcca9 //nolint:revive,stylecheck

	// Signalling
	TLS_EMPTY_RENEGOTIATION_INFO_SCSV CipherSuiteID = 0x00ff //nolint:revive,stylecheck
	TLS_FALLBACK_SCSV                 CipherSuiteID = 0x5600 //nolint:revive,stylecheck
)

var cipherSuiteNames = map[CipherSuiteID]string{ //nolint:gochecknoglobals
	TLS_NULL_WITH_NULL_NULL:                       "TLS_NULL_WITH_NULL_NULL",
	TLS_RSA_WITH_NULL_MD5:                         "TLS_RSA_WITH_NULL_MD5",
	TLS_RSA_WITH_NULL_SHA:                         "TLS_RSA_WITH_NULL_SHA",
	TLS_RSA_EXPORT_WITH_RC4_40_MD5:                "TLS_RSA_EXPORT_WITH_RC4_40_MD5",
	TLS_RSA_WITH_RC4_128_MD5:                      "TLS_RSA_WITH_RC4_128_MD5",
	TLS_RSA_WITH_RC4_128_SHA:                      "TLS_RSA_WITH_RC4_128_SHA",
	TLS_RSA_EXPORT_WITH_RC2_CBC_40_MD5:            "TLS_RSA_EXPORT_WITH_RC2_CBC_40_MD5",
	TLS_RSA_WITH_IDEA_CBC_SHA:                     "TLS_RSA_WITH_IDEA_CBC_SHA",
	TLS_RSA_EXPORT_WITH_DES40_CBC_SHA:             "TLS_RSA_EXPORT_WITH_DES40_CBC_SHA",
	TLS_RSA_WITH_DES_CBC_SHA:                      "TLS_RSA_WITH_DES_CBC_SHA",
	TLS_RSA_WITH_3DES_EDE_CBC_SHA:                 "TLS_RSA_WITH_3DES_EDE_CBC_SHA",
	TLS_RSA_WITH_AES_128_CBC_SHA:                  "TLS_RSA_WITH_AES_128_CBC_SHA",
	TLS_RSA_WITH_AES_256_CBC_SHA:                  "TLS_RSA_WITH_AES_256_CBC_SHA",
	TLS_RSA_WITH_AES_128_CBC_SHA256:               "TLS_RSA_WITH_AES_128_CBC_SHA256",
	TLS_RSA_WITH_AES_256_CBC_SHA256:               "TLS_RSA_WITH_AES_256_CBC_SHA256",
	TLS_RSA_EXPORT1024_WITH_RC4_56_SHA:            "TLS_RSA_EXPORT1024_WITH_RC4_56_SHA",
	TLS_RSA_WITH_AES_128_GCM_SHA256:               "TLS_RSA_WITH_AES_128_GCM_SHA256",
	TLS_RSA_WITH_AES_256_GCM_SHA384:               "TLS_RSA_WITH_AES_256_GCM_SHA384",
	TLS_RSA_WITH_AES_128_CCM:                      "TLS_RSA_WITH_AES_128_CCM",
	TLS_RSA_WITH_AES_256_CCM:                      "TLS_RSA_WITH_AES_256_CCM",
	TLS_RSA_WITH_AES_128_CCM_8:                    "TLS_RSA_WITH_AES_128_CCM_8",
	TLS_RSA_WITH_AES_256_CCM_8:                    "TLS_RSA_WITH_AES_256_CCM_8",
	TLS_DH_DSS_EXPORT_WITH_DES40_CBC_SHA:          "TLS_DH_DSS_EXPORT_WITH_DES40_CBC_SHA",
	TLS_DH_DSS_WITH_DES_CBC_SHA:                   "TLS_DH_DSS_WITH_DES_CBC_SHA",
	TLS_DH_DSS_WITH_3DES_EDE_CBC_SHA:              "TLS_DH_DSS_WITH_3DES_EDE_CBC_SHA",
	TLS_DH_RSA_EXPORT_WITH_DES40_CBC_SHA:          "TLS_DH_RSA_EXPORT_WITH_DES40_CBC_SHA",
	TLS_DH_RSA_WITH_DES_CBC_SHA:                   "TLS_DH_RSA_WITH_DES_CBC_SHA",
	TLS_DH_RSA_WITH_3DES_EDE_CBC_SHA:              "TLS_DH_RSA_WITH_3DES_EDE_CBC_SHA",
	TLS_DHE_DSS_EXPORT_WITH_DES40_CBC_SHA:         "TLS_DHE_DSS_EXPORT_WITH_DES40_CBC_SHA",
	TLS_DHE_DSS_WITH_DES_CBC_SHA:                  "TLS_DHE_DSS_WITH_DES_CBC_SHA",
	TLS_DHE_DSS_WITH_3DES_EDE_CBC_SHA:             "TLS_DHE_DSS_WITH_3DES_EDE_CBC_SHA",
	TLS_DHE_RSA_EXPORT_WITH_DES40_CBC_SHA:         "TLS_DHE_RSA_EXPORT_WITH_DES40_CBC_SHA",
	TLS_DHE_RSA_WITH_DES_CBC_SHA:                  "TLS_DHE_RSA_WITH_DES_CBC_SHA",
	TLS_DHE_RSA_WITH_3DES_EDE_CBC_SHA:             "TLS_DHE_RSA_WITH_3DES_EDE_CBC_SHA",
	TLS_DH_anon_EXPORT_WITH_RC4_40_MD5:            "TLS_DH_anon_EXPORT_WITH_RC4_40_MD5",
	TLS_DH_anon_WITH_RC4_128_MD5:                  "TLS_DH_anon_WITH_RC4_128_MD5",
	TLS_DH_anon_EXPORT_WITH_DES40_CBC_SHA:         "TLS_DH_anon_EXPORT_WITH_DES40_CBC_SHA",
	TLS_DH_anon_WITH_DES_CBC_SHA:                  "TLS_DH_anon_WITH_DES_CBC_SHA",
	TLS_DH_anon_WITH_3DES_EDE_CBC_SHA:             "TLS_DH_anon_WITH_3DES_EDE_CBC_SHA",
	TLS_DHE_RSA_WITH_AES_128_CBC_SHA:              "TLS_DHE_RSA_WITH_AES_128_CBC_SHA",
	TLS_DHE_RSA_WITH_AES_256_CBC_SHA:              "TLS_DHE_RSA_WITH_AES_256_CBC_SHA",
	TLS_DHE_RSA_WITH_AES_128_CBC_SHA256:           "TLS_DHE_RSA_WITH_AES_128_CBC_SHA256",
	TLS_DHE_RSA_WITH_AES_256_CBC_SHA256:           "TLS_DHE_RSA_WITH_AES_256_CBC_SHA256",
	TLS_DHE_RSA_WITH_AES_128_GCM_SHA256:           "TLS_DHE_RSA_WITH_AES_128_GCM_SHA256",
	TLS_DHE_RSA_WITH_AES_256_GCM_SHA384:           "TLS_DHE_RSA_WITH_AES_256_GCM_SHA384",
	TLS_KRB5_WITH_DES_CBC_SHA:                     "TLS_KRB5_WITH_DES_CBC_SHA",
	TLS_KRB5_WITH_3DES_EDE_CBC_SHA:                "TLS_KRB5_WITH_3DES_EDE_CBC_SHA",
	TLS_KRB5_WITH_RC4_128_SHA:                     "TLS_KRB5_WITH_RC4_128_SHA",
	TLS_KRB5_WITH_IDEA_CBC_SHA:                    "TLS_KRB5_WITH_IDEA_CBC_SHA",
	TLS_KRB5_WITH_DES_CBC_MD5:                     "TLS_KRB5_WITH_DES_CBC_MD5",
	TLS_KRB5_WITH_3DES_EDE_CBC_MD5:                "TLS_KRB5_WITH_3DES_EDE_CBC_MD5",
	TLS_KRB5_WITH_RC4_128_MD5:                     "TLS_KRB5_WITH_RC4_128_MD5",
	TLS_KRB5_WITH_IDEA_CBC_MD5:                    "TLS_KRB5_WITH_IDEA_CBC_MD5",
	TLS_KRB5_EXPORT_WITH_DES_CBC_40_SHA:           "TLS_KRB5_EXPORT_WITH_DES_CBC_40_SHA",
	TLS_KRB5_EXPORT_WITH_RC2_CBC_40_SHA:           "TLS_KRB5_EXPORT_WITH_RC2_CBC_40_SHA",
	TLS_KRB5_EXPORT_WITH_RC4_40_SHA:               "TLS_KRB5_EXPORT_WITH_RC4_40_SHA",
	TLS_KRB5_EXPORT_WITH_DES_CBC_40_MD5:           "TLS_KRB5_EXPORT_WITH_DES_CBC_40_MD5",
	TLS_KRB5_EXPORT_WITH_RC2_CBC_40_MD5:           "TLS_KRB5_EXPORT_WITH_RC2_CBC_40_MD5",
	TLS_KRB5_EXPORT_WITH_RC4_40_MD5:               "TLS_KRB5_EXPORT_WITH_RC4_40_MD5",
	TLS_PSK_WITH_NULL_SHA:                         "TLS_PSK_WITH_NULL_SHA",
	TLS_PSK_WITH_RC4_128_SHA:                      "TLS_PSK_WITH_RC4_128_SHA",
	TLS_PSK_WITH_3DES_EDE_CBC_SHA:                 "TLS_PSK_WITH_3DES_EDE_CBC_SHA",
	TLS_PSK_WITH_AES_128_CBC_SHA:                  "TLS_PSK_WITH_AES_128_CBC_SHA",
	TLS_PSK_WITH_AES_256_CBC_SHA:                  "TLS_PSK_WITH_AES_256_CBC_SHA",
	TLS_PSK_WITH_AES_128_GCM_SHA256:               "TLS_PSK_WITH_AES_128_GCM_SHA256",
	TLS_PSK_WITH_AES_256_GCM_SHA384:               "TLS_PSK_WITH_AES_256_GCM_SHA384",
	TLS_PSK_WITH_AES_128_CBC_SHA256:               "TLS_PSK_WITH_AES_128_CBC_SHA256",
	TLS_PSK_WITH_AES_128_CCM:                      "TLS_PSK_WITH_AES_128_CCM",
	TLS_PSK_WITH_AES_128_CCM_8:                    "TLS_PSK_WITH_AES_128_CCM_8",
	TLS_PSK_WITH_CHACHA20_POLY1305_SHA256:         "TLS_PSK_WITH_CHACHA20_POLY1305_SHA256",
	TLS_ECDHE_PSK_WITH_RC4_128_SHA:                "TLS_ECDHE_PSK_WITH_RC4_128_SHA",
	TLS_ECDHE_PSK_WITH_AES_128_CBC_SHA:            "TLS_ECDHE_PSK_WITH_AES_128_CBC_SHA",
	TLS_ECDHE_PSK_WITH_AES_256_CBC_SHA:            "TLS_ECDHE_PSK_WITH_AES_256_CBC_SHA",
	TLS_ECDHE_PSK_WITH_AES_128_CBC_SHA256:         "TLS_ECDHE_PSK_WITH_AES_128_CBC_SHA256",
	TLS_ECDHE_PSK_WITH_CHACHA20_POLY1305_SHA256:   "TLS_ECDHE_PSK_WITH_CHACHA20_POLY1305_SHA256",
	TLS_ECDH_ECDSA_WITH_NULL_SHA:                  "TLS_ECDH_ECDSA_WITH_NULL_SHA",
	TLS_ECDH_ECDSA_WITH_RC4_128_SHA:               "TLS_ECDH_ECDSA_WITH_RC4_128_SHA",
	TLS_ECDH_ECDSA_WITH_AES_128_CBC_SHA:           "TLS_ECDH_ECDSA_WITH_AES_128_CBC_SHA",
	TLS_ECDH_ECDSA_WITH_AES_256_CBC_SHA:           "TLS_ECDH_ECDSA_WITH_AES_256_CBC_SHA",
	TLS_ECDHE_ECDSA_WITH_NULL_SHA:                 "TLS_ECDHE_ECDSA_WITH_NULL_SHA",
	TLS_ECDHE_ECDSA_WITH_RC4_128_SHA:              "TLS_ECDHE_ECDSA_WITH_RC4_128_SHA",
	TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA:          "TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA",
	TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA:          "TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA",
	TLS_ECDH_RSA_WITH_NULL_SHA:                    "TLS_ECDH_RSA_WITH_NULL_SHA",
	TLS_ECDH_RSA_WITH_RC4_128_SHA:                 "TLS_ECDH_RSA_WITH_RC4_128_SHA",
	TLS_ECDH_RSA_WITH_AES_128_CBC_SHA:             "TLS_ECDH_RSA_WITH_AES_128_CBC_SHA",
	TLS_ECDH_RSA_WITH_AES_256_CBC_SHA:             "TLS_ECDH_RSA_WITH_AES_256_CBC_SHA",
	TLS_ECDHE_RSA_WITH_NULL_SHA:                   "TLS_ECDHE_RSA_WITH_NULL_SHA",
	TLS_ECDHE_RSA_WITH_RC4_128_SHA:                "TLS_ECDHE_RSA_WITH_RC4_128_SHA",
	TLS_ECDHE_RSA_WITH_3DES_EDE_CBC_SHA:           "TLS_ECDHE_RSA_WITH_3DES_EDE_CBC_SHA",
	TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA:            "TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA",
	TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA:            "TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA",
	TLS_ECDH_anon_WITH_AES_128_CBC_SHA:            "TLS_ECDH_anon_WITH_AES_128_CBC_SHA",
	TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA256:       "TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA256",
	TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA384:       "TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA384",
	TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA256:         "TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA256",
	TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA384:         "TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA384",
	TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256:       "TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256",
	TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384:       "TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384",
	TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256:         "TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256",
	TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384:         "TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384",
	TLS_ECDHE_ECDSA_WITH_AES_128_CCM:              "TLS_ECDHE_ECDSA_WITH_AES_128_CCM",
	TLS_ECDHE_ECDSA_WITH_AES_256_CCM:              "TLS_ECDHE_ECDSA_WITH_AES_256_CCM",
	TLS_ECDHE_ECDSA_WITH_AES_128_CCM_8:            "TLS_ECDHE_ECDSA_WITH_AES_128_CCM_8",
	TLS_ECDHE_ECDSA_WITH_AES_256_CCM_8:            "TLS_ECDHE_ECDSA_WITH_AES_256_CCM_8",
	TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256:   "TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256",
	TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256: "TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256",
	TLS_EMPTY_RENEGOTIATION_INFO_SCSV:             "TLS_EMPTY_RENEGOTIATION_INFO_SCSV",
	TLS_FALLBACK_SCSV:                             "TLS_FALLBACK_SCSV",
}

// IsKnown reports whether the ID has a registered name.
func (c CipherSuiteID) IsKnown() bool {
	_, ok := cipherSuiteNames[c]

	return ok
}

func (c CipherSuiteID) String() string {
	if name, ok := cipherSuiteNames[c]; ok {
		return name
	}

	return fmt.Sprintf("unknown(0x%04x)", uint16(c))
}

const (
	cipherSuiteIDLength = 2
	maxCipherSuites     = 0xffff / cipherSuiteIDLength
)

// CipherSuites is a list of offered cipher suites, encoded with a
// 2-byte length (in bytes) followed by the IDs.
type CipherSuites []CipherSuiteID

// Marshal encodes the list with its length prefix.
func (c CipherSuites) Marshal() ([]byte, error) {
	if len(c) > maxCipherSuites {
		return nil, errTooManyCipherSuites
	}

	var b cryptobyte.Builder
	addCipherSuites(&b, c)

	return b.Bytes()
}

// Unmarshal decodes a length prefixed list. Bytes after the list are ignored.
func (c *CipherSuites) Unmarshal(data []byte) error {
	s := cryptobyte.String(data)
	ids, err := readCipherSuites(&s)
	if err != nil {
		return err
	}
	*c = ids

	return nil
}

func addCipherSuites(b *cryptobyte.Builder, c CipherSuites) {
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, id := range c {
			b.AddUint16(uint16(id))
		}
	})
}

func readCipherSuites(s *cryptobyte.String) (CipherSuites, error) {
	var length uint16
	if !s.ReadUint16(&length) {
		return nil, errBufferTooSmall
	}
	if length%cipherSuiteIDLength != 0 {
		return nil, errCipherSuitesOddLength
	}

	var raw []byte
	if !s.ReadBytes(&raw, int(length)) {
		return nil, errDeclaredLength("cipher suites", int(length), len(*s))
	}

	out := make(CipherSuites, 0, len(raw)/cipherSuiteIDLength)
	for i := 0; i < len(raw); i += cipherSuiteIDLength {
		out = append(out, CipherSuiteID(binary.BigEndian.Uint16(raw[i:])))
	}

	return out, nil
}
