package pricing

import (
	"github.com/visitgeorgia/transfers/internal/location"
	"github.com/visitgeorgia/transfers/internal/vehicle"
)

// rec builds a Record from the per-tier EUR prices plus the display
// duration and distance.
func rec(sedan, minivan, sprinter, longSprinter, greatSprinter int, duration, distance string) Record {
	return Record{
		Prices: map[vehicle.Tier]int{
			vehicle.Sedan:         sedan,
			vehicle.Minivan:       minivan,
			vehicle.Sprinter:      sprinter,
			vehicle.LongSprinter:  longSprinter,
			vehicle.GreatSprinter: greatSprinter,
		},
		Duration: duration,
		Distance: distance,
	}
}

// routeTable is the canonical per-tier price table, keyed by directed
// (origin, destination) pair. Most pairs are authored symmetrically but
// that is a data-entry convention only; lookups always use the pair as
// given and never infer the reverse direction.
var routeTable = map[location.Key]map[location.Key]Record{
	location.TbilisiAirport: {
		location.TbilisiCity: rec(25, 35, 50, 70, 100, "30 min", "30 km"),
		location.Gudauri:     rec(85, 115, 175, 225, 360, "2h 15min", "130 km"),
		location.Kazbegi:     rec(95, 130, 195, 250, 400, "3h", "165 km"),
		location.Batumi:      rec(180, 250, 360, 450, 560, "5h 30min", "400 km"),
		location.Kutaisi:     rec(120, 165, 250, 330, 500, "3h 15min", "245 km"),
		location.Kakheti:     rec(75, 105, 160, 205, 320, "1h 45min", "120 km"),
		location.Borjomi:     rec(100, 145, 215, 280, 440, "2h 45min", "175 km"),
		location.Mestia:      rec(250, 325, 460, 600, 850, "8h 30min", "480 km"),
		location.Bakuriani:   rec(110, 135, 200, 250, 350, "3h", "155 km"),
	},
	location.TbilisiCity: {
		location.TbilisiAirport: rec(25, 35, 50, 70, 100, "30 min", "30 km"),
		location.Gudauri:        rec(85, 115, 175, 225, 360, "2h", "125 km"),
		location.Kazbegi:        rec(95, 130, 195, 250, 400, "2h 45min", "160 km"),
		location.Batumi:         rec(180, 250, 360, 450, 560, "5h 15min", "385 km"),
		location.Kutaisi:        rec(120, 165, 250, 330, 500, "3h", "235 km"),
		location.Kakheti:        rec(75, 105, 160, 205, 320, "1h 30min", "110 km"),
		location.Borjomi:        rec(100, 145, 215, 280, 440, "2h 30min", "165 km"),
		location.Mestia:         rec(250, 325, 460, 600, 850, "8h", "465 km"),
		location.Bakuriani:      rec(110, 135, 200, 250, 350, "2h 45min", "145 km"),
	},
	location.Gudauri: {
		location.TbilisiAirport: rec(85, 115, 175, 225, 360, "2h 15min", "130 km"),
		location.TbilisiCity:    rec(85, 115, 175, 225, 360, "2h", "125 km"),
		location.Kazbegi:        rec(35, 50, 75, 100, 150, "50 min", "40 km"),
		location.Batumi:         rec(220, 290, 420, 530, 700, "6h 30min", "480 km"),
		location.Kutaisi:        rec(150, 200, 300, 380, 550, "4h 30min", "340 km"),
		location.Kakheti:        rec(120, 160, 240, 310, 450, "3h 30min", "220 km"),
		location.Borjomi:        rec(140, 185, 280, 360, 520, "4h", "280 km"),
		location.Mestia:         rec(280, 365, 520, 670, 950, "9h", "560 km"),
		location.Bakuriani:      rec(130, 175, 260, 340, 480, "4h", "260 km"),
	},
	location.Kazbegi: {
		location.TbilisiAirport: rec(95, 130, 195, 250, 400, "3h", "165 km"),
		location.TbilisiCity:    rec(95, 130, 195, 250, 400, "2h 45min", "160 km"),
		location.Gudauri:        rec(35, 50, 75, 100, 150, "50 min", "40 km"),
		location.Batumi:         rec(240, 315, 450, 570, 750, "7h", "520 km"),
		location.Kutaisi:        rec(165, 220, 330, 420, 600, "5h", "380 km"),
		location.Kakheti:        rec(130, 175, 260, 340, 480, "4h", "260 km"),
		location.Borjomi:        rec(155, 205, 310, 400, 570, "4h 30min", "320 km"),
		location.Mestia:         rec(300, 390, 560, 720, 1000, "9h 30min", "600 km"),
		location.Bakuriani:      rec(145, 195, 290, 380, 530, "4h 30min", "300 km"),
	},
	location.Batumi: {
		location.TbilisiAirport: rec(180, 250, 360, 450, 560, "5h 30min", "400 km"),
		location.TbilisiCity:    rec(180, 250, 360, 450, 560, "5h 15min", "385 km"),
		location.Gudauri:        rec(220, 290, 420, 530, 700, "6h 30min", "480 km"),
		location.Kazbegi:        rec(240, 315, 450, 570, 750, "7h", "520 km"),
		location.Kutaisi:        rec(100, 130, 190, 250, 380, "2h 45min", "165 km"),
		location.Kakheti:        rec(220, 290, 420, 530, 700, "6h 30min", "480 km"),
		location.Borjomi:        rec(140, 185, 280, 360, 520, "3h 45min", "250 km"),
		location.Mestia:         rec(160, 210, 320, 410, 580, "5h", "290 km"),
		location.Bakuriani:      rec(150, 200, 300, 385, 550, "4h", "270 km"),
	},
	location.Kutaisi: {
		location.TbilisiAirport: rec(120, 165, 250, 330, 500, "3h 15min", "245 km"),
		location.TbilisiCity:    rec(120, 165, 250, 330, 500, "3h", "235 km"),
		location.Gudauri:        rec(150, 200, 300, 380, 550, "4h 30min", "340 km"),
		location.Kazbegi:        rec(165, 220, 330, 420, 600, "5h", "380 km"),
		location.Batumi:         rec(100, 130, 190, 250, 380, "2h 45min", "165 km"),
		location.Kakheti:        rec(160, 215, 320, 410, 590, "4h 30min", "330 km"),
		location.Borjomi:        rec(80, 110, 165, 215, 320, "2h", "120 km"),
		location.Mestia:         rec(110, 145, 220, 285, 420, "3h 30min", "140 km"),
		location.Bakuriani:      rec(90, 120, 180, 235, 350, "2h 15min", "135 km"),
	},
	location.Kakheti: {
		location.TbilisiAirport: rec(75, 105, 160, 205, 320, "1h 45min", "120 km"),
		location.TbilisiCity:    rec(75, 105, 160, 205, 320, "1h 30min", "110 km"),
		location.Gudauri:        rec(120, 160, 240, 310, 450, "3h 30min", "220 km"),
		location.Kazbegi:        rec(130, 175, 260, 340, 480, "4h", "260 km"),
		location.Batumi:         rec(220, 290, 420, 530, 700, "6h 30min", "480 km"),
		location.Kutaisi:        rec(160, 215, 320, 410, 590, "4h 30min", "330 km"),
		location.Borjomi:        rec(130, 175, 260, 340, 480, "3h 30min", "250 km"),
		location.Mestia:         rec(290, 380, 540, 700, 980, "9h", "560 km"),
		location.Bakuriani:      rec(140, 185, 280, 360, 520, "4h", "270 km"),
	},
	location.Borjomi: {
		location.TbilisiAirport: rec(100, 145, 215, 280, 440, "2h 45min", "175 km"),
		location.TbilisiCity:    rec(100, 145, 215, 280, 440, "2h 30min", "165 km"),
		location.Gudauri:        rec(140, 185, 280, 360, 520, "4h", "280 km"),
		location.Kazbegi:        rec(155, 205, 310, 400, 570, "4h 30min", "320 km"),
		location.Batumi:         rec(140, 185, 280, 360, 520, "3h 45min", "250 km"),
		location.Kutaisi:        rec(80, 110, 165, 215, 320, "2h", "120 km"),
		location.Kakheti:        rec(130, 175, 260, 340, 480, "3h 30min", "250 km"),
		location.Mestia:         rec(200, 260, 380, 490, 700, "6h 30min", "370 km"),
		location.Bakuriani:      rec(30, 45, 65, 85, 130, "35 min", "35 km"),
	},
	location.Mestia: {
		location.TbilisiAirport: rec(250, 325, 460, 600, 850, "8h 30min", "480 km"),
		location.TbilisiCity:    rec(250, 325, 460, 600, 850, "8h", "465 km"),
		location.Gudauri:        rec(280, 365, 520, 670, 950, "9h", "560 km"),
		location.Kazbegi:        rec(300, 390, 560, 720, 1000, "9h 30min", "600 km"),
		location.Batumi:         rec(160, 210, 320, 410, 580, "5h", "290 km"),
		location.Kutaisi:        rec(110, 145, 220, 285, 420, "3h 30min", "140 km"),
		location.Kakheti:        rec(290, 380, 540, 700, 980, "9h", "560 km"),
		location.Borjomi:        rec(200, 260, 380, 490, 700, "6h 30min", "370 km"),
		location.Bakuriani:      rec(190, 250, 360, 465, 670, "6h", "350 km"),
	},
	location.Bakuriani: {
		location.TbilisiAirport: rec(110, 135, 200, 250, 350, "3h", "155 km"),
		location.TbilisiCity:    rec(110, 135, 200, 250, 350, "2h 45min", "145 km"),
		location.Gudauri:        rec(130, 175, 260, 340, 480, "4h", "260 km"),
		location.Kazbegi:        rec(145, 195, 290, 380, 530, "4h 30min", "300 km"),
		location.Batumi:         rec(150, 200, 300, 385, 550, "4h", "270 km"),
		location.Kutaisi:        rec(90, 120, 180, 235, 350, "2h 15min", "135 km"),
		location.Kakheti:        rec(140, 185, 280, 360, 520, "4h", "270 km"),
		location.Borjomi:        rec(30, 45, 65, 85, 130, "35 min", "35 km"),
		location.Mestia:         rec(190, 250, 360, 465, 670, "6h", "350 km"),
	},
}

// sedanBaseTable is the older simplified table: a sedan price per pair,
// scaled by the tier multiplier at resolution time. Its derived prices
// do not always agree with routeTable (e.g. a long-sprinter airport
// transfer comes out 65 vs 70), so it is deprecated and consulted only
// for pairs absent from routeTable.
var sedanBaseTable = map[location.Key]map[location.Key]int{
	location.TbilisiAirport: {
		location.TbilisiCity: 25, location.Gudauri: 85, location.Kazbegi: 95,
		location.Batumi: 180, location.Kutaisi: 120, location.Kakheti: 75,
		location.Borjomi: 100, location.Mestia: 250, location.Bakuriani: 110,
	},
	location.TbilisiCity: {
		location.TbilisiAirport: 25, location.Gudauri: 85, location.Kazbegi: 95,
		location.Batumi: 180, location.Kutaisi: 120, location.Kakheti: 75,
		location.Borjomi: 100, location.Mestia: 250, location.Bakuriani: 110,
	},
	location.Gudauri: {
		location.TbilisiAirport: 85, location.TbilisiCity: 85, location.Kazbegi: 35,
		location.Batumi: 220, location.Kutaisi: 150, location.Kakheti: 120,
		location.Borjomi: 140, location.Mestia: 280, location.Bakuriani: 130,
	},
	location.Kazbegi: {
		location.TbilisiAirport: 95, location.TbilisiCity: 95, location.Gudauri: 35,
		location.Batumi: 240, location.Kutaisi: 165, location.Kakheti: 130,
		location.Borjomi: 155, location.Mestia: 300, location.Bakuriani: 145,
	},
	location.Batumi: {
		location.TbilisiAirport: 180, location.TbilisiCity: 180, location.Gudauri: 220,
		location.Kazbegi: 240, location.Kutaisi: 100, location.Kakheti: 220,
		location.Borjomi: 140, location.Mestia: 160, location.Bakuriani: 150,
	},
	location.Kutaisi: {
		location.TbilisiAirport: 120, location.TbilisiCity: 120, location.Gudauri: 150,
		location.Kazbegi: 165, location.Batumi: 100, location.Kakheti: 160,
		location.Borjomi: 80, location.Mestia: 110, location.Bakuriani: 90,
	},
	location.Kakheti: {
		location.TbilisiAirport: 75, location.TbilisiCity: 75, location.Gudauri: 120,
		location.Kazbegi: 130, location.Batumi: 220, location.Kutaisi: 160,
		location.Borjomi: 130, location.Mestia: 290, location.Bakuriani: 140,
	},
	location.Borjomi: {
		location.TbilisiAirport: 100, location.TbilisiCity: 100, location.Gudauri: 140,
		location.Kazbegi: 155, location.Batumi: 140, location.Kutaisi: 80,
		location.Kakheti: 130, location.Mestia: 200, location.Bakuriani: 30,
	},
	location.Mestia: {
		location.TbilisiAirport: 250, location.TbilisiCity: 250, location.Gudauri: 280,
		location.Kazbegi: 300, location.Batumi: 160, location.Kutaisi: 110,
		location.Kakheti: 290, location.Borjomi: 200, location.Bakuriani: 190,
	},
	location.Bakuriani: {
		location.TbilisiAirport: 110, location.TbilisiCity: 110, location.Gudauri: 130,
		location.Kazbegi: 145, location.Batumi: 150, location.Kutaisi: 90,
		location.Kakheti: 140, location.Borjomi: 30, location.Mestia: 190,
	},
}
