/*
Package units implements exact conversion of token amounts between major units
(e.g. "1.23456789" bitcoins) and minor units (e.g. 123456789 satoshis).
It is designed for tokens with any number of decimal places, including
tokens with 18 decimal places whose minor unit amounts do not fit into
an int64.

# Features

  - Exact conversion of strings, integers and big integers of any magnitude
  - Sign handled apart from magnitude, negative zero is never produced
  - Results as float64, decimal string, big integer or [decimal.Decimal]
  - Errors instead of silent precision loss
  - Table of well-known tokens and their decimal places
  - Stateless functions, safe for concurrent use by multiple goroutines

# Representation

An amount is passed as an empty interface and may hold:

  - a float64 or float32 (number);
  - a built-in integer, a *big.Int or a big.Int (integer);
  - a string in the format [sign] digits [ "." digits ] (decimal string);
  - a [decimal.Decimal].

A conversion result is a [Value] that holds exactly one representation,
selected by a [ReturnType]: [Number], [String], [BigInt] or [Decimal].

# Conversions

[MinorToMajor] divides a whole amount of minor units by 10^places.
[MajorToMinor] multiplies an amount of major units by 10^places.
[ToBaseUnit] and [FromBaseUnit] do the same with places fixed to 8,
and the methods of [Token] use the decimal places of the token.

# Precision

Integers, big integers, decimal strings and decimals are converted without
rounding.
Floats are converted using their shortest decimal representation, so 4.6
bitcoins are 460000000 satoshis, not 459999999.
When converting to minor units, a Number result is only returned if its
magnitude does not exceed 2^53 - 1, the largest integer that a float64 can
hold exactly.
Request a [String] or [BigInt] result for larger amounts.

# Errors

All functions return errors that wrap one of the exported Err variables,
such as [ErrIntegerOverflow], so they can be checked with [errors.Is].
*/
package units
