package repository

import "github.com/camden-git/totenbilder/models"

// demoTotenbilder is the built-in sample served while no database is configured.
var demoTotenbilder = []models.Totenbild{
	{
		NID:         101,
		Alias:       models.StringPtr("huber-maria"),
		Name:        models.StringPtr("Huber Maria"),
		Vorname:     models.StringPtr("Maria"),
		Nachname:    models.StringPtr("Huber"),
		Ledigname:   models.StringPtr("Schmidt"),
		Ort:         models.StringPtr("Salzburg"),
		Strasse:     models.StringPtr("Getreidegasse 9"),
		Geschlecht:  models.StringPtr("w"),
		Bekenntnis:  models.StringPtr("rk"),
		Beruf1:      models.StringPtr("Hausfrau"),
		Geburtsjahr: models.IntPtr(1905),
		Sterbedatum: models.StringPtr("23.11.1985"),
		Sterbetag:   models.IntPtr(23),
		Sterbemonat: models.IntPtr(11),
		Sterbejahr:  models.IntPtr(1985),
		Sterbealter: models.IntPtr(80),
		Bemerkung:   models.StringPtr("Ruhe in Frieden."),
		Images: []models.TotenbildImage{
			{Filename: "dummy_1.jpg", Width: models.IntPtr(600), Height: models.IntPtr(800), Filemime: "image/jpeg"},
			{Filename: "dummy_1_back.jpg", Width: models.IntPtr(600), Height: models.IntPtr(800), Filemime: "image/jpeg"},
		},
	},
	{
		NID:         102,
		Alias:       models.StringPtr("hofer-franz"),
		Name:        models.StringPtr("Hofer Franz"),
		Vorname:     models.StringPtr("Franz"),
		Nachname:    models.StringPtr("Hofer"),
		Ort:         models.StringPtr("Tirol"),
		Strasse:     models.StringPtr("Bergweg 2"),
		Geschlecht:  models.StringPtr("m"),
		Bekenntnis:  models.StringPtr("rk"),
		Beruf1:      models.StringPtr("Bauer"),
		Beruf2:      models.StringPtr("Holzknecht"),
		Geburtsjahr: models.IntPtr(1888),
		Sterbedatum: models.StringPtr("15.02.1955"),
		Sterbetag:   models.IntPtr(15),
		Sterbemonat: models.IntPtr(2),
		Sterbejahr:  models.IntPtr(1955),
		Sterbealter: models.IntPtr(67),
		Images: []models.TotenbildImage{
			{Filename: "dummy_2.jpg", Width: models.IntPtr(500), Height: models.IntPtr(700), Filemime: "image/jpeg"},
		},
	},
	{
		NID:         103,
		Alias:       models.StringPtr("weber-anna"),
		Name:        models.StringPtr("Weber Anna"),
		Vorname:     models.StringPtr("Anna"),
		Nachname:    models.StringPtr("Weber"),
		Ledigname:   models.StringPtr("Kaufmann"),
		Ort:         models.StringPtr("Graz"),
		Strasse:     models.StringPtr("Herrengasse 1"),
		Geschlecht:  models.StringPtr("w"),
		Bekenntnis:  models.StringPtr("ev"),
		Beruf1:      models.StringPtr("Lehrerin"),
		Geburtsjahr: models.IntPtr(1920),
		Sterbedatum: models.StringPtr("10.04.2001"),
		Sterbetag:   models.IntPtr(10),
		Sterbemonat: models.IntPtr(4),
		Sterbejahr:  models.IntPtr(2001),
		Sterbealter: models.IntPtr(81),
		Bemerkung:   models.StringPtr("Beliebte Lehrerin der Volksschule."),
		Images: []models.TotenbildImage{
			{Filename: "dummy_3.jpg", Width: models.IntPtr(550), Height: models.IntPtr(750), Filemime: "image/jpeg"},
		},
	},
	{
		NID:         104,
		Alias:       models.StringPtr("wagner-johann"),
		Name:        models.StringPtr("Wagner Johann"),
		Vorname:     models.StringPtr("Johann"),
		Nachname:    models.StringPtr("Wagner"),
		Ort:         models.StringPtr("Linz"),
		Strasse:     models.StringPtr("Landstraße 55"),
		Geschlecht:  models.StringPtr("m"),
		Bekenntnis:  models.StringPtr("rk"),
		Beruf1:      models.StringPtr("Schmied"),
		Geburtsjahr: models.IntPtr(1875),
		Sterbedatum: models.StringPtr("01.09.1944"),
		Sterbetag:   models.IntPtr(1),
		Sterbemonat: models.IntPtr(9),
		Sterbejahr:  models.IntPtr(1944),
		Sterbealter: models.IntPtr(69),
		Images: []models.TotenbildImage{
			{Filename: "dummy_4.jpg", Width: models.IntPtr(600), Height: models.IntPtr(900), Filemime: "image/jpeg"},
		},
	},
}
