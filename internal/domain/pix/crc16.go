package pix

// crc16CCITTFalse computes the CRC-16/CCITT-FALSE checksum required by the
// EMV QR spec for BR Code payloads: polynomial 0x1021, initial register
// 0xFFFF, no reflection, no final XOR. Banking apps reject payloads whose
// trailing checksum does not match this exact variant.
func crc16CCITTFalse(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
