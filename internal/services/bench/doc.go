// Package bench times prime generation over a range of bit lengths.
//
// The default sweep starts at 128 bits and grows each size by 5%, running
// every size several times and reporting the average, maximum and minimum
// wall-clock time.
package bench
