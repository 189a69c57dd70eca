// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package models

import "strconv"

// AgeRatingCategory is the rating board an age rating belongs to,
// integer-coded on the wire per the IGDB enum.
type AgeRatingCategory int

const (
	AgeRatingESRB     AgeRatingCategory = 1
	AgeRatingPEGI     AgeRatingCategory = 2
	AgeRatingCERO     AgeRatingCategory = 3
	AgeRatingUSK      AgeRatingCategory = 4
	AgeRatingGRAC     AgeRatingCategory = 5
	AgeRatingClassInd AgeRatingCategory = 6
	AgeRatingACB      AgeRatingCategory = 7
)

func (c AgeRatingCategory) String() string {
	switch c {
	case AgeRatingESRB:
		return "ESRB"
	case AgeRatingPEGI:
		return "PEGI"
	case AgeRatingCERO:
		return "CERO"
	case AgeRatingUSK:
		return "USK"
	case AgeRatingGRAC:
		return "GRAC"
	case AgeRatingClassInd:
		return "ClassInd"
	case AgeRatingACB:
		return "ACB"
	default:
		return "AgeRatingCategory(" + strconv.Itoa(int(c)) + ")"
	}
}

// AgeRatingValue is the rating itself, integer-coded on the wire per the
// IGDB enum. Values 1-5 are PEGI, 6-12 ESRB, 13-17 CERO, 18-22 USK, 23-27
// GRAC, 28-33 ClassInd, and 34-39 ACB.
type AgeRatingValue int

const (
	RatingThree            AgeRatingValue = 1
	RatingSeven            AgeRatingValue = 2
	RatingTwelve           AgeRatingValue = 3
	RatingSixteen          AgeRatingValue = 4
	RatingEighteen         AgeRatingValue = 5
	RatingRP               AgeRatingValue = 6
	RatingEC               AgeRatingValue = 7
	RatingE                AgeRatingValue = 8
	RatingE10              AgeRatingValue = 9
	RatingT                AgeRatingValue = 10
	RatingM                AgeRatingValue = 11
	RatingAO               AgeRatingValue = 12
	RatingCeroA            AgeRatingValue = 13
	RatingCeroB            AgeRatingValue = 14
	RatingCeroC            AgeRatingValue = 15
	RatingCeroD            AgeRatingValue = 16
	RatingCeroZ            AgeRatingValue = 17
	RatingUSK0             AgeRatingValue = 18
	RatingUSK6             AgeRatingValue = 19
	RatingUSK12            AgeRatingValue = 20
	RatingUSK16            AgeRatingValue = 21
	RatingUSK18            AgeRatingValue = 22
	RatingGracAll          AgeRatingValue = 23
	RatingGracTwelve       AgeRatingValue = 24
	RatingGracFifteen      AgeRatingValue = 25
	RatingGracEighteen     AgeRatingValue = 26
	RatingGracTesting      AgeRatingValue = 27
	RatingClassIndL        AgeRatingValue = 28
	RatingClassIndTen      AgeRatingValue = 29
	RatingClassIndTwelve   AgeRatingValue = 30
	RatingClassIndFourteen AgeRatingValue = 31
	RatingClassIndSixteen  AgeRatingValue = 32
	RatingClassIndEighteen AgeRatingValue = 33
	RatingAcbG             AgeRatingValue = 34
	RatingAcbPG            AgeRatingValue = 35
	RatingAcbM             AgeRatingValue = 36
	RatingAcbMA15          AgeRatingValue = 37
	RatingAcbR18           AgeRatingValue = 38
	RatingAcbRC            AgeRatingValue = 39
)

var ageRatingValueNames = map[AgeRatingValue]string{
	RatingThree:            "3",
	RatingSeven:            "7",
	RatingTwelve:           "12",
	RatingSixteen:          "16",
	RatingEighteen:         "18",
	RatingRP:               "RP",
	RatingEC:               "EC",
	RatingE:                "E",
	RatingE10:              "E10",
	RatingT:                "T",
	RatingM:                "M",
	RatingAO:               "AO",
	RatingCeroA:            "CERO A",
	RatingCeroB:            "CERO B",
	RatingCeroC:            "CERO C",
	RatingCeroD:            "CERO D",
	RatingCeroZ:            "CERO Z",
	RatingUSK0:             "USK 0",
	RatingUSK6:             "USK 6",
	RatingUSK12:            "USK 12",
	RatingUSK16:            "USK 16",
	RatingUSK18:            "USK 18",
	RatingGracAll:          "GRAC All",
	RatingGracTwelve:       "GRAC 12",
	RatingGracFifteen:      "GRAC 15",
	RatingGracEighteen:     "GRAC 18",
	RatingGracTesting:      "GRAC Testing",
	RatingClassIndL:        "ClassInd L",
	RatingClassIndTen:      "ClassInd 10",
	RatingClassIndTwelve:   "ClassInd 12",
	RatingClassIndFourteen: "ClassInd 14",
	RatingClassIndSixteen:  "ClassInd 16",
	RatingClassIndEighteen: "ClassInd 18",
	RatingAcbG:             "ACB G",
	RatingAcbPG:            "ACB PG",
	RatingAcbM:             "ACB M",
	RatingAcbMA15:          "ACB MA15+",
	RatingAcbR18:           "ACB R18+",
	RatingAcbRC:            "ACB RC",
}

func (v AgeRatingValue) String() string {
	if name, ok := ageRatingValueNames[v]; ok {
		return name
	}
	return "AgeRatingValue(" + strconv.Itoa(int(v)) + ")"
}

// AgeRating is one board's age rating for a game.
type AgeRating struct {
	Category       AgeRatingCategory `json:"category"`
	Rating         AgeRatingValue    `json:"rating"`
	RatingCoverURL *string           `json:"rating_cover_url,omitempty"`
}
