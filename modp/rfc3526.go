package modp

// Hex tables of RFC 3526 (and the 1536-bit group 5 that RFC 3526 retains
// from IKE practice). Whitespace is ignored when parsing.

const (
	prime1536 = `
		FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
		29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
		EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
		E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
		EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
		C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
		83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
		670C354E 4ABC9804 F1746C08 CA237327 FFFFFFFF FFFFFFFF`
	order1536 = `
		7FFFFFFF FFFFFFFF E487ED51 10B4611A 62633145 C06E0E68
		94812704 4533E63A 0105DF53 1D89CD91 28A5043C C71A026E
		F7CA8CD9 E69D218D 98158536 F92F8A1B A7F09AB6 B6A8E122
		F242DABB 312F3F63 7A262174 D31BF6B5 85FFAE5B 7A035BF6
		F71C35FD AD44CFD2 D74F9208 BE258FF3 24943328 F6722D9E
		E1003E5C 50B1DF82 CC6D241B 0E2AE9CD 348B1FD4 7E9267AF
		C1B2AE91 EE51D6CB 0E3179AB 1042A95D CF6A9483 B84B4B36
		B3861AA7 255E4C02 78BA3604 6511B993 FFFFFFFF FFFFFFFF`
)

const (
	prime2048 = `
		FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
		29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
		EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
		E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
		EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
		C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
		83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
		670C354E 4ABC9804 F1746C08 CA18217C 32905E46 2E36CE3B
		E39E772C 180E8603 9B2783A2 EC07A28F B5C55DF0 6F4C52C9
		DE2BCBF6 95581718 3995497C EA956AE5 15D22618 98FA0510
		15728E5A 8AACAA68 FFFFFFFF FFFFFFFF`
	order2048 = `
		7FFFFFFF FFFFFFFF E487ED51 10B4611A 62633145 C06E0E68
		94812704 4533E63A 0105DF53 1D89CD91 28A5043C C71A026E
		F7CA8CD9 E69D218D 98158536 F92F8A1B A7F09AB6 B6A8E122
		F242DABB 312F3F63 7A262174 D31BF6B5 85FFAE5B 7A035BF6
		F71C35FD AD44CFD2 D74F9208 BE258FF3 24943328 F6722D9E
		E1003E5C 50B1DF82 CC6D241B 0E2AE9CD 348B1FD4 7E9267AF
		C1B2AE91 EE51D6CB 0E3179AB 1042A95D CF6A9483 B84B4B36
		B3861AA7 255E4C02 78BA3604 650C10BE 19482F23 171B671D
		F1CF3B96 0C074301 CD93C1D1 7603D147 DAE2AEF8 37A62964
		EF15E5FB 4AAC0B8C 1CCAA4BE 754AB572 8AE9130C 4C7D0288
		0AB9472D 45565534 7FFFFFFF FFFFFFFF`
)

const (
	prime3072 = `
		FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
		29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
		EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
		E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
		EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
		C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
		83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
		670C354E 4ABC9804 F1746C08 CA18217C 32905E46 2E36CE3B
		E39E772C 180E8603 9B2783A2 EC07A28F B5C55DF0 6F4C52C9
		DE2BCBF6 95581718 3995497C EA956AE5 15D22618 98FA0510
		15728E5A 8AAAC42D AD33170D 04507A33 A85521AB DF1CBA64
		ECFB8504 58DBEF0A 8AEA7157 5D060C7D B3970F85 A6E1E4C7
		ABF5AE8C DB0933D7 1E8C94E0 4A25619D CEE3D226 1AD2EE6B
		F12FFA06 D98A0864 D8760273 3EC86A64 521F2B18 177B200C
		BBE11757 7A615D6C 770988C0 BAD946E2 08E24FA0 74E5AB31
		43DB5BFC E0FD108E 4B82D120 A93AD2CA FFFFFFFF FFFFFFFF`
	order3072 = `
		7FFFFFFF FFFFFFFF E487ED51 10B4611A 62633145 C06E0E68
		94812704 4533E63A 0105DF53 1D89CD91 28A5043C C71A026E
		F7CA8CD9 E69D218D 98158536 F92F8A1B A7F09AB6 B6A8E122
		F242DABB 312F3F63 7A262174 D31BF6B5 85FFAE5B 7A035BF6
		F71C35FD AD44CFD2 D74F9208 BE258FF3 24943328 F6722D9E
		E1003E5C 50B1DF82 CC6D241B 0E2AE9CD 348B1FD4 7E9267AF
		C1B2AE91 EE51D6CB 0E3179AB 1042A95D CF6A9483 B84B4B36
		B3861AA7 255E4C02 78BA3604 650C10BE 19482F23 171B671D
		F1CF3B96 0C074301 CD93C1D1 7603D147 DAE2AEF8 37A62964
		EF15E5FB 4AAC0B8C 1CCAA4BE 754AB572 8AE9130C 4C7D0288
		0AB9472D 45556216 D6998B86 82283D19 D42A90D5 EF8E5D32
		767DC282 2C6DF785 457538AB AE83063E D9CB87C2 D370F263
		D5FAD746 6D8499EB 8F464A70 2512B0CE E771E913 0D697735
		F897FD03 6CC50432 6C3B0139 9F643532 290F958C 0BBD9006
		5DF08BAB BD30AEB6 3B84C460 5D6CA371 047127D0 3A72D598
		A1EDADFE 707E8847 25C16890 549D6965 7FFFFFFF FFFFFFFF`
)

const (
	prime4096 = `
		FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
		29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
		EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
		E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
		EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
		C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
		83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
		670C354E 4ABC9804 F1746C08 CA18217C 32905E46 2E36CE3B
		E39E772C 180E8603 9B2783A2 EC07A28F B5C55DF0 6F4C52C9
		DE2BCBF6 95581718 3995497C EA956AE5 15D22618 98FA0510
		15728E5A 8AAAC42D AD33170D 04507A33 A85521AB DF1CBA64
		ECFB8504 58DBEF0A 8AEA7157 5D060C7D B3970F85 A6E1E4C7
		ABF5AE8C DB0933D7 1E8C94E0 4A25619D CEE3D226 1AD2EE6B
		F12FFA06 D98A0864 D8760273 3EC86A64 521F2B18 177B200C
		BBE11757 7A615D6C 770988C0 BAD946E2 08E24FA0 74E5AB31
		43DB5BFC E0FD108E 4B82D120 A9210801 1A723C12 A787E6D7
		88719A10 BDBA5B26 99C32718 6AF4E23C 1A946834 B6150BDA
		2583E9CA 2AD44CE8 DBBBC2DB 04DE8EF9 2E8EFC14 1FBECAA6
		287C5947 4E6BC05D 99B2964F A090C3A2 233BA186 515BE7ED
		1F612970 CEE2D7AF B81BDD76 2170481C D0069127 D5B05AA9
		93B4EA98 8D8FDDC1 86FFB7DC 90A6C08F 4DF435C9 34063199
		FFFFFFFF FFFFFFFF`
	order4096 = `
		7FFFFFFF FFFFFFFF E487ED51 10B4611A 62633145 C06E0E68
		94812704 4533E63A 0105DF53 1D89CD91 28A5043C C71A026E
		F7CA8CD9 E69D218D 98158536 F92F8A1B A7F09AB6 B6A8E122
		F242DABB 312F3F63 7A262174 D31BF6B5 85FFAE5B 7A035BF6
		F71C35FD AD44CFD2 D74F9208 BE258FF3 24943328 F6722D9E
		E1003E5C 50B1DF82 CC6D241B 0E2AE9CD 348B1FD4 7E9267AF
		C1B2AE91 EE51D6CB 0E3179AB 1042A95D CF6A9483 B84B4B36
		B3861AA7 255E4C02 78BA3604 650C10BE 19482F23 171B671D
		F1CF3B96 0C074301 CD93C1D1 7603D147 DAE2AEF8 37A62964
		EF15E5FB 4AAC0B8C 1CCAA4BE 754AB572 8AE9130C 4C7D0288
		0AB9472D 45556216 D6998B86 82283D19 D42A90D5 EF8E5D32
		767DC282 2C6DF785 457538AB AE83063E D9CB87C2 D370F263
		D5FAD746 6D8499EB 8F464A70 2512B0CE E771E913 0D697735
		F897FD03 6CC50432 6C3B0139 9F643532 290F958C 0BBD9006
		5DF08BAB BD30AEB6 3B84C460 5D6CA371 047127D0 3A72D598
		A1EDADFE 707E8847 25C16890 54908400 8D391E09 53C3F36B
		C438CD08 5EDD2D93 4CE1938C 357A711E 0D4A341A 5B0A85ED
		12C1F4E5 156A2674 6DDDE16D 826F477C 97477E0A 0FDF6553
		143E2CA3 A735E02E CCD94B27 D04861D1 119DD0C3 28ADF3F6
		8FB094B8 67716BD7 DC0DEEBB 10B8240E 68034893 EAD82D54
		C9DA754C 46C7EEE0 C37FDBEE 48536047 A6FA1AE4 9A0318CC
		FFFFFFFF FFFFFFFF`
)

const (
	prime6144 = `
		FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
		29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
		EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
		E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
		EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
		C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
		83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
		670C354E 4ABC9804 F1746C08 CA18217C 32905E46 2E36CE3B
		E39E772C 180E8603 9B2783A2 EC07A28F B5C55DF0 6F4C52C9
		DE2BCBF6 95581718 3995497C EA956AE5 15D22618 98FA0510
		15728E5A 8AAAC42D AD33170D 04507A33 A85521AB DF1CBA64
		ECFB8504 58DBEF0A 8AEA7157 5D060C7D B3970F85 A6E1E4C7
		ABF5AE8C DB0933D7 1E8C94E0 4A25619D CEE3D226 1AD2EE6B
		F12FFA06 D98A0864 D8760273 3EC86A64 521F2B18 177B200C
		BBE11757 7A615D6C 770988C0 BAD946E2 08E24FA0 74E5AB31
		43DB5BFC E0FD108E 4B82D120 A9210801 1A723C12 A787E6D7
		88719A10 BDBA5B26 99C32718 6AF4E23C 1A946834 B6150BDA
		2583E9CA 2AD44CE8 DBBBC2DB 04DE8EF9 2E8EFC14 1FBECAA6
		287C5947 4E6BC05D 99B2964F A090C3A2 233BA186 515BE7ED
		1F612970 CEE2D7AF B81BDD76 2170481C D0069127 D5B05AA9
		93B4EA98 8D8FDDC1 86FFB7DC 90A6C08F 4DF435C9 34028492
		36C3FAB4 D27C7026 C1D4DCB2 602646DE C9751E76 3DBA37BD
		F8FF9406 AD9E530E E5DB382F 413001AE B06A53ED 9027D831
		179727B0 865A8918 DA3EDBEB CF9B14ED 44CE6CBA CED4BB1B
		DB7F1447 E6CC254B 33205151 2BD7AF42 6FB8F401 378CD2BF
		5983CA01 C64B92EC F032EA15 D1721D03 F482D7CE 6E74FEF6
		D55E702F 46980C82 B5A84031 900B1C9E 59E7C97F BEC7E8F3
		23A97A7E 36CC88BE 0F1D45B7 FF585AC5 4BD407B2 2B4154AA
		CC8F6D7E BF48E1D8 14CC5ED2 0F8037E0 A79715EE F29BE328
		06A1D58B B7C5DA76 F550AA3D 8A1FBFF0 EB19CCB1 A313D55C
		DA56C9EC 2EF29632 387FE8D7 6E3C0468 043E8F66 3F4860EE
		12BF2D5B 0B7474D6 E694F91E 6DCC4024 FFFFFFFF FFFFFFFF`
	order6144 = `
		7FFFFFFF FFFFFFFF E487ED51 10B4611A 62633145 C06E0E68
		94812704 4533E63A 0105DF53 1D89CD91 28A5043C C71A026E
		F7CA8CD9 E69D218D 98158536 F92F8A1B A7F09AB6 B6A8E122
		F242DABB 312F3F63 7A262174 D31BF6B5 85FFAE5B 7A035BF6
		F71C35FD AD44CFD2 D74F9208 BE258FF3 24943328 F6722D9E
		E1003E5C 50B1DF82 CC6D241B 0E2AE9CD 348B1FD4 7E9267AF
		C1B2AE91 EE51D6CB 0E3179AB 1042A95D CF6A9483 B84B4B36
		B3861AA7 255E4C02 78BA3604 650C10BE 19482F23 171B671D
		F1CF3B96 0C074301 CD93C1D1 7603D147 DAE2AEF8 37A62964
		EF15E5FB 4AAC0B8C 1CCAA4BE 754AB572 8AE9130C 4C7D0288
		0AB9472D 45556216 D6998B86 82283D19 D42A90D5 EF8E5D32
		767DC282 2C6DF785 457538AB AE83063E D9CB87C2 D370F263
		D5FAD746 6D8499EB 8F464A70 2512B0CE E771E913 0D697735
		F897FD03 6CC50432 6C3B0139 9F643532 290F958C 0BBD9006
		5DF08BAB BD30AEB6 3B84C460 5D6CA371 047127D0 3A72D598
		A1EDADFE 707E8847 25C16890 54908400 8D391E09 53C3F36B
		C438CD08 5EDD2D93 4CE1938C 357A711E 0D4A341A 5B0A85ED
		12C1F4E5 156A2674 6DDDE16D 826F477C 97477E0A 0FDF6553
		143E2CA3 A735E02E CCD94B27 D04861D1 119DD0C3 28ADF3F6
		8FB094B8 67716BD7 DC0DEEBB 10B8240E 68034893 EAD82D54
		C9DA754C 46C7EEE0 C37FDBEE 48536047 A6FA1AE4 9A014249
		1B61FD5A 693E3813 60EA6E59 3013236F 64BA8F3B 1EDD1BDE
		FC7FCA03 56CF2987 72ED9C17 A09800D7 583529F6 C813EC18
		8BCB93D8 432D448C 6D1F6DF5 E7CD8A76 A267365D 676A5D8D
		EDBF8A23 F36612A5 999028A8 95EBD7A1 37DC7A00 9BC6695F
		ACC1E500 E325C976 7819750A E8B90E81 FA416BE7 373A7F7B
		6AAF3817 A34C0641 5AD42018 C8058E4F 2CF3E4BF DF63F479
		91D4BD3F 1B66445F 078EA2DB FFAC2D62 A5EA03D9 15A0AA55
		6647B6BF 5FA470EC 0A662F69 07C01BF0 53CB8AF7 794DF194
		0350EAC5 DBE2ED3B 7AA8551E C50FDFF8 758CE658 D189EAAE
		6D2B64F6 17794B19 1C3FF46B B71E0234 021F47B3 1FA43077
		095F96AD 85BA3A6B 734A7C8F 36E62012 7FFFFFFF FFFFFFFF`
)

const (
	prime8192 = `
		FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
		29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
		EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
		E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
		EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
		C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
		83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
		670C354E 4ABC9804 F1746C08 CA18217C 32905E46 2E36CE3B
		E39E772C 180E8603 9B2783A2 EC07A28F B5C55DF0 6F4C52C9
		DE2BCBF6 95581718 3995497C EA956AE5 15D22618 98FA0510
		15728E5A 8AAAC42D AD33170D 04507A33 A85521AB DF1CBA64
		ECFB8504 58DBEF0A 8AEA7157 5D060C7D B3970F85 A6E1E4C7
		ABF5AE8C DB0933D7 1E8C94E0 4A25619D CEE3D226 1AD2EE6B
		F12FFA06 D98A0864 D8760273 3EC86A64 521F2B18 177B200C
		BBE11757 7A615D6C 770988C0 BAD946E2 08E24FA0 74E5AB31
		43DB5BFC E0FD108E 4B82D120 A9210801 1A723C12 A787E6D7
		88719A10 BDBA5B26 99C32718 6AF4E23C 1A946834 B6150BDA
		2583E9CA 2AD44CE8 DBBBC2DB 04DE8EF9 2E8EFC14 1FBECAA6
		287C5947 4E6BC05D 99B2964F A090C3A2 233BA186 515BE7ED
		1F612970 CEE2D7AF B81BDD76 2170481C D0069127 D5B05AA9
		93B4EA98 8D8FDDC1 86FFB7DC 90A6C08F 4DF435C9 34028492
		36C3FAB4 D27C7026 C1D4DCB2 602646DE C9751E76 3DBA37BD
		F8FF9406 AD9E530E E5DB382F 413001AE B06A53ED 9027D831
		179727B0 865A8918 DA3EDBEB CF9B14ED 44CE6CBA CED4BB1B
		DB7F1447 E6CC254B 33205151 2BD7AF42 6FB8F401 378CD2BF
		5983CA01 C64B92EC F032EA15 D1721D03 F482D7CE 6E74FEF6
		D55E702F 46980C82 B5A84031 900B1C9E 59E7C97F BEC7E8F3
		23A97A7E 36CC88BE 0F1D45B7 FF585AC5 4BD407B2 2B4154AA
		CC8F6D7E BF48E1D8 14CC5ED2 0F8037E0 A79715EE F29BE328
		06A1D58B B7C5DA76 F550AA3D 8A1FBFF0 EB19CCB1 A313D55C
		DA56C9EC 2EF29632 387FE8D7 6E3C0468 043E8F66 3F4860EE
		12BF2D5B 0B7474D6 E694F91E 6DBE1159 74A3926F 12FEE5E4
		38777CB6 A932DF8C D8BEC4D0 73B931BA 3BC832B6 8D9DD300
		741FA7BF 8AFC47ED 2576F693 6BA42466 3AAB639C 5AE4F568
		3423B474 2BF1C978 238F16CB E39D652D E3FDB8BE FC848AD9
		22222E04 A4037C07 13EB57A8 1A23F0C7 3473FC64 6CEA306B
		4BCBC886 2F8385DD FA9D4B7F A2C087E8 79683303 ED5BDD3A
		062B3CF5 B3A278A6 6D2A13F8 3F44F82D DF310EE0 74AB6A36
		4597E899 A0255DC1 64F31CC5 0846851D F9AB4819 5DED7EA1
		B1D510BD 7EE74D73 FAF36BC3 1ECFA268 359046F4 EB879F92
		4009438B 481C6CD7 889A002E D5EE382B C9190DA6 FC026E47
		9558E447 5677E9AA 9E3050E2 765694DF C81F56E8 80B96E71
		60C980DD 98EDD3DF FFFFFFFF FFFFFFFF`
	order8192 = `
		7FFFFFFF FFFFFFFF E487ED51 10B4611A 62633145 C06E0E68
		94812704 4533E63A 0105DF53 1D89CD91 28A5043C C71A026E
		F7CA8CD9 E69D218D 98158536 F92F8A1B A7F09AB6 B6A8E122
		F242DABB 312F3F63 7A262174 D31BF6B5 85FFAE5B 7A035BF6
		F71C35FD AD44CFD2 D74F9208 BE258FF3 24943328 F6722D9E
		E1003E5C 50B1DF82 CC6D241B 0E2AE9CD 348B1FD4 7E9267AF
		C1B2AE91 EE51D6CB 0E3179AB 1042A95D CF6A9483 B84B4B36
		B3861AA7 255E4C02 78BA3604 650C10BE 19482F23 171B671D
		F1CF3B96 0C074301 CD93C1D1 7603D147 DAE2AEF8 37A62964
		EF15E5FB 4AAC0B8C 1CCAA4BE 754AB572 8AE9130C 4C7D0288
		0AB9472D 45556216 D6998B86 82283D19 D42A90D5 EF8E5D32
		767DC282 2C6DF785 457538AB AE83063E D9CB87C2 D370F263
		D5FAD746 6D8499EB 8F464A70 2512B0CE E771E913 0D697735
		F897FD03 6CC50432 6C3B0139 9F643532 290F958C 0BBD9006
		5DF08BAB BD30AEB6 3B84C460 5D6CA371 047127D0 3A72D598
		A1EDADFE 707E8847 25C16890 54908400 8D391E09 53C3F36B
		C438CD08 5EDD2D93 4CE1938C 357A711E 0D4A341A 5B0A85ED
		12C1F4E5 156A2674 6DDDE16D 826F477C 97477E0A 0FDF6553
		143E2CA3 A735E02E CCD94B27 D04861D1 119DD0C3 28ADF3F6
		8FB094B8 67716BD7 DC0DEEBB 10B8240E 68034893 EAD82D54
		C9DA754C 46C7EEE0 C37FDBEE 48536047 A6FA1AE4 9A014249
		1B61FD5A 693E3813 60EA6E59 3013236F 64BA8F3B 1EDD1BDE
		FC7FCA03 56CF2987 72ED9C17 A09800D7 583529F6 C813EC18
		8BCB93D8 432D448C 6D1F6DF5 E7CD8A76 A267365D 676A5D8D
		EDBF8A23 F36612A5 999028A8 95EBD7A1 37DC7A00 9BC6695F
		ACC1E500 E325C976 7819750A E8B90E81 FA416BE7 373A7F7B
		6AAF3817 A34C0641 5AD42018 C8058E4F 2CF3E4BF DF63F479
		91D4BD3F 1B66445F 078EA2DB FFAC2D62 A5EA03D9 15A0AA55
		6647B6BF 5FA470EC 0A662F69 07C01BF0 53CB8AF7 794DF194
		0350EAC5 DBE2ED3B 7AA8551E C50FDFF8 758CE658 D189EAAE
		6D2B64F6 17794B19 1C3FF46B B71E0234 021F47B3 1FA43077
		095F96AD 85BA3A6B 734A7C8F 36DF08AC BA51C937 897F72F2
		1C3BBE5B 54996FC6 6C5F6268 39DC98DD 1DE4195B 46CEE980
		3A0FD3DF C57E23F6 92BB7B49 B5D21233 1D55B1CE 2D727AB4
		1A11DA3A 15F8E4BC 11C78B65 F1CEB296 F1FEDC5F 7E42456C
		91111702 5201BE03 89F5ABD4 0D11F863 9A39FE32 36751835
		A5E5E443 17C1C2EE FD4EA5BF D16043F4 3CB41981 F6ADEE9D
		03159E7A D9D13C53 369509FC 1FA27C16 EF988770 3A55B51B
		22CBF44C D012AEE0 B2798E62 8423428E FCD5A40C AEF6BF50
		D8EA885E BF73A6B9 FD79B5E1 8F67D134 1AC8237A 75C3CFC9
		2004A1C5 A40E366B C44D0017 6AF71C15 E48C86D3 7E013723
		CAAC7223 AB3BF4D5 4F182871 3B2B4A6F E40FAB74 405CB738
		B064C06E CC76E9EF FFFFFFFF FFFFFFFF`
)
