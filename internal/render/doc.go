// Package render draws the meeting history onto a map of the continental
// United States and encodes it as an image.
//
// A Map is built in one pass:
//
//  1. A 15 x 10 inch canvas in the Lambert conformal projection, clipped to
//     [-125°, -66.5°] longitude and [20°, 50°] latitude.
//  2. Base layers in order: land, ocean, dotted national borders,
//     half-transparent lakes, rivers, coastlines.
//  3. A red marker and a "{year}: {city}" label for each point. Labels sit
//     0.5° north and 0.5° east of their marker.
//  4. A blue arrow from each point to the next one in year order.
//  5. The title.
//
// Arrows follow the chronology of the meetings, not geographic proximity, so
// the map shows where the conference went next.
package render
