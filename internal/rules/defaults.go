package rules

// Default returns the built-in rule tables. `releve init` writes them to
// rules.yaml so they can be edited without rebuilding.
func Default() *Tables {
	return &Tables{
		Merchants:  merchantTable(),
		Operations: operationTable(),
	}
}

func merchantTable() Table {
	return Table{
		Rules: []Rule{
			{Match: "Migros", Label: "Migros", Category: "Food"},
			{Match: "Aldi", Label: "Aldi", Category: "Food"},
			{Match: "Denner", Label: "Denner", Category: "Food"},
			{Match: "LAUSANNE10", Label: "LAUSANNE10", Category: "Food"},
			{Match: "Manor", Label: "Manor", Category: "Food"},
			{Match: "Coop", Label: "Coop", Category: "Food"},
			{Match: "Jumbo", Label: "Jumbo", Category: "Home"},
			{Match: "L'Instant Chocolat", Label: "L'Instant Chocolat", Category: "Food"},
			{Match: "APPLE.COM", Label: "APPLE.COM", Category: "Media"},
			{Match: "THE NEW YORK TIMES", Label: "THE NEW YORK TIMES", Category: "Media"},
			{Match: "THE ATHLETIC", Label: "THE ATHLETIC", Category: "Media"},
			{Match: "Tesla", Label: "Tesla", Category: "Car"},
			{Match: "Prime Video", Label: "Prime Video", Category: "Media"},
			{Match: "Sun Store", Label: "Pharmacie-Sunstore", Category: "Health"},
			{Match: "Pharmacie-Sunstore", Label: "Pharmacie-Sunstore", Category: "Health"},
			{Match: "Droguerie Jaquet", Label: "Droguerie Jaquet", Category: "Health"},
			{Match: "Sakura Sushi", Label: "Sakura Sushi", Category: "Food"},
			{Match: "Boutique Ravann", Label: "Boutique Ravann", Category: "Food"},
			{Match: "SBB CFF", Label: "SBB CFF", Category: "Transport"},
			{Match: "Brezelkönig", Label: "Brezelkönig", Category: "Food"},
			{Match: "Zalando", Label: "Zalando", Category: "Clothing"},
			{Match: "BestDrive", Label: "BestDrive", Category: "Car"},
			{Match: "KymeM Cafe", Label: "KymeM Cafe", Category: "Restaurant"},
			{Match: "Pizzeria Vecchia", Label: "Pizzeria Vecchia Napoli", Category: "Restaurant"},
			{Match: "NETFLIX.COM", Label: "NETFLIX.COM", Category: "Media"},
			{Match: "Netflix.com", Label: "NETFLIX.COM", Category: "Media"},
			{Match: "Salt", Label: "Salt Mobile SA", Category: "Media"},
			{Match: "salt.ch", Label: "Salt Mobile SA", Category: "Media"},
			{Match: "Patreon", Label: "Patreon", Category: "Media"},
			{Match: "Association Golf de La Puidoux", Label: "Association Golf de La Puidoux", Category: "Hobby"},
			{Match: "Exotic Food Center", Label: "Exotic Food Center", Category: "Food"},
			{Match: "Aux Merveilleux", Label: "Aux Merveilleux", Category: "Food"},
			{Match: "Appunto Rest.", Label: "Appunto Rest.", Category: "Food"},
			{Match: "QoQa Services SA", Label: "QoQa", Category: "?"},
			{Match: "DAZN", Label: "DAZN", Category: "Media"},
			{Match: "URUMQI", Label: "URUMQI", Category: "Food"},
			{Match: "La Cavagne", Label: "La Cavagne", Category: "Food"},
		},
	}
}

func operationTable() Table {
	return Table{
		Prefixes: []string{"BCV-NET ", "VIRT BANC ", "VIR TWINT "},
		Rules: []Rule{
			{Match: "Distalmotion", Category: "Salary"},
			{Match: "Duol", Label: "Duol", Category: "Chant Cred", SubCategory: "Duol"},
			{Match: "INSTITUT LE CHATELARD", Category: "Chant Cred", SubCategory: "Chatelard"},
			{Match: "Leni", Category: "Kids Deb"},
			{Match: "Assura-Basis", Category: "Health"},
			{Match: "Etat de Vaud Impôts", Category: "Impot"},
			{Match: "Swisscom ", Category: "Media"},
			{Match: "Sunrise", Category: "Media"},
			{Match: "Salt", Category: "Media"},
			{Match: "Koloristika", Category: "Chant"},
			{Match: "Planchamp, Xavier", Category: "Rent"},
			{Match: "Baptiste Dujardin", Category: "Food"},
			{Match: "Caisse de pensions de", Label: "Parking", Category: "Car"},
			{Match: "PPE LE CAMPUS", Category: "Home Crosets"},
			{Match: "Romande Energie SA", Category: "Home"},
			{Match: "Energiapro SA", Category: "Home"},
			{Match: "PPE SUNDANCE", Category: "Home Crosets"},
			{Match: "Caisse AVS de la Feder", Category: "Alloc"},
		},
	}
}
